package testing

import "github.com/go-drift/transition/pkg/transition"

func recordWithKey(key string) transition.Record {
	return transition.Record{Key: key}
}
