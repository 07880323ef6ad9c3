package transition

import (
	"strconv"
	"time"
	"weak"

	drifterrors "github.com/go-drift/transition/pkg/errors"
)

// DefaultComponent is the container type a Group reports when none is set.
const DefaultComponent = "span"

// Child is one member of a Group's desired collection.
//
// Props is a template: the group overrides Into and TransitionAppear, fills
// Duration and Animation from the group when they are zero, and wraps
// OnHide so it can drop the child after its exit animation.
type Child struct {
	// Key identifies the child across updates. An empty key is replaced by
	// "." followed by the child's index in the collection.
	Key   string
	Props Props
}

// GroupConfig configures a [Group].
type GroupConfig struct {
	// Component names the container the rendering collaborator wraps the
	// children in. Defaults to DefaultComponent.
	Component string
	// Duration is applied to children that do not set their own.
	Duration time.Duration
	// Animation is applied to children that do not set their own.
	Animation string
	// Appear plays the enter animation for the children present at
	// construction. Children added later always animate in.
	Appear bool
	// Children is the initial collection.
	Children []Child
	// OnRemoved is called after a child finished exiting and was dropped.
	OnRemoved func(key string)
}

type member struct {
	props      Props
	controller *Controller
}

// Group keeps a keyed, ordered set of controllers in sync with a desired
// collection.
//
// Removing a child from the collection does not drop it: its controller is
// switched to hidden and the child keeps rendering until its exit animation
// completes. Only then, and only if the child is still absent from the most
// recent collection, is it removed.
//
// A Group exclusively owns its controllers. Controllers reach back to the
// group through a weak reference bound to their key, so they never keep a
// discarded group alive.
type Group struct {
	component string
	duration  time.Duration
	animation string
	onRemoved func(string)
	opts      []Option
	self      weak.Pointer[Group]

	keys    []string
	members map[string]*member
	desired map[string]struct{}

	disposed       bool
	misuseReported bool
}

// NewGroup creates a group and mounts its initial children. A negative
// duration, or a child that ends up without an animation name, is rejected
// with a *errors.TransitionError of kind KindConfig.
func NewGroup(cfg GroupConfig, opts ...Option) (*Group, error) {
	if cfg.Duration < 0 {
		return nil, drifterrors.Config("transition.NewGroup", ErrNegativeDuration)
	}
	component := cfg.Component
	if component == "" {
		component = DefaultComponent
	}
	g := &Group{
		component: component,
		duration:  cfg.Duration,
		animation: cfg.Animation,
		onRemoved: cfg.OnRemoved,
		opts:      opts,
		members:   make(map[string]*member),
	}
	g.self = weak.Make(g)

	keys, next := childMapping(cfg.Children)
	created := make(map[string]*member, len(keys))
	for _, key := range keys {
		props := g.childProps(key, next[key], true, cfg.Appear)
		c, err := g.newController(key, props)
		if err != nil {
			for _, m := range created {
				m.controller.Dispose()
			}
			return nil, err
		}
		created[key] = &member{props: props, controller: c}
	}

	g.keys = keys
	g.members = created
	g.desired = keySet(keys)
	for _, key := range snapshot(g.keys) {
		if m, ok := g.members[key]; ok {
			m.controller.Update()
		}
	}
	return g, nil
}

// Update reconciles the group with a new desired collection.
//
// Each child is classified against the retained set:
//
//   - entering (new, or exiting and back again): shown, with appear forced
//     on so it always animates in
//   - exiting (retained, absent now, not already exiting): hidden
//   - already exiting and still absent: left alone to finish
//   - unchanged: intent and appear flags carried over, element refreshed
//
// New children that fail validation abort the update before anything
// changes.
func (g *Group) Update(children []Child) error {
	if g.disposed {
		g.reportMisuse("transition.Group.Update")
		return nil
	}

	nextKeys, next := childMapping(children)
	merged := mergeKeys(g.keys, nextKeys, next)

	staged := make(map[string]*member, len(merged))
	var fresh []*member
	for _, key := range merged {
		prev, hasPrev := g.members[key]
		child, hasNext := next[key]
		leaving := hasPrev && !prev.props.Into

		switch {
		case hasNext && (!hasPrev || leaving):
			props := g.childProps(key, child, true, true)
			if hasPrev {
				staged[key] = &member{props: props, controller: prev.controller}
				break
			}
			c, err := g.newController(key, props)
			if err != nil {
				for _, m := range fresh {
					m.controller.Dispose()
				}
				return err
			}
			m := &member{props: props, controller: c}
			staged[key] = m
			fresh = append(fresh, m)
		case !hasNext && hasPrev && !leaving:
			props := prev.props
			props.Into = false
			staged[key] = &member{props: props, controller: prev.controller}
		case hasNext && hasPrev:
			props := g.childProps(key, child, prev.props.Into, prev.props.TransitionAppear)
			staged[key] = &member{props: props, controller: prev.controller}
		default:
			staged[key] = prev
		}
	}

	for _, m := range staged {
		if err := m.props.validate(); err != nil {
			for _, f := range fresh {
				f.controller.Dispose()
			}
			e := drifterrors.Config("transition.Group.Update", err)
			e.Key = m.controller.Key()
			return e
		}
	}

	g.keys = merged
	g.members = staged
	g.desired = keySet(nextKeys)

	for _, key := range snapshot(g.keys) {
		m, ok := g.members[key]
		if !ok {
			continue
		}
		if m.controller.IsDisposed() {
			continue
		}
		// Props were validated above, so Apply cannot fail here.
		_ = m.controller.Apply(m.props)
	}
	return nil
}

func (g *Group) newController(key string, props Props) (*Controller, error) {
	opts := make([]Option, 0, len(g.opts)+1)
	opts = append(opts, g.opts...)
	opts = append(opts, WithKey(key))
	c, err := NewController(props, opts...)
	if err != nil {
		if te, ok := err.(*drifterrors.TransitionError); ok {
			te.Key = key
		}
		return nil, err
	}
	return c, nil
}

// childProps builds the effective props for a child.
func (g *Group) childProps(key string, child Child, into, appear bool) Props {
	props := child.Props
	props.Into = into
	props.TransitionAppear = appear
	if props.Duration == 0 {
		props.Duration = g.duration
	}
	if props.Animation == "" {
		props.Animation = g.animation
	}
	props.OnHide = exitHandler(g.self, key, child.Props.OnHide)
	return props
}

// exitHandler binds a child's exit completion to its key. It holds the
// group weakly so a discarded group is simply skipped.
func exitHandler(ref weak.Pointer[Group], key string, user func(Record)) func(Record) {
	return func(r Record) {
		if user != nil {
			func() {
				defer drifterrors.RecoverCallback("transition.Group.onHide", key)
				user(r)
			}()
		}
		if g := ref.Value(); g != nil {
			g.handleExited(key)
		}
	}
}

// handleExited drops key unless the latest collection still contains it.
func (g *Group) handleExited(key string) {
	if g.disposed {
		return
	}
	if _, ok := g.desired[key]; ok {
		return
	}
	m, ok := g.members[key]
	if !ok {
		return
	}
	delete(g.members, key)
	for i, k := range g.keys {
		if k == key {
			g.keys = append(g.keys[:i:i], g.keys[i+1:]...)
			break
		}
	}
	m.controller.Dispose()
	if g.onRemoved != nil {
		func() {
			defer drifterrors.RecoverCallback("transition.Group.onRemoved", key)
			g.onRemoved(key)
		}()
	}
}

// Component returns the container type name.
func (g *Group) Component() string {
	return g.component
}

// Len returns the number of retained children, including exiting ones.
func (g *Group) Len() int {
	return len(g.keys)
}

// Keys returns the retained keys in render order.
func (g *Group) Keys() []string {
	return snapshot(g.keys)
}

// Controller returns the controller owned for key, or nil.
func (g *Group) Controller(key string) *Controller {
	if m, ok := g.members[key]; ok {
		return m.controller
	}
	return nil
}

// Member returns the effective props last configured for key.
func (g *Group) Member(key string) (Props, bool) {
	m, ok := g.members[key]
	if !ok {
		return Props{}, false
	}
	return m.props, true
}

// Render returns the rendered children in order, skipping unmounted ones.
func (g *Group) Render() []Rendered {
	out := make([]Rendered, 0, len(g.keys))
	for _, key := range g.keys {
		m, ok := g.members[key]
		if !ok {
			continue
		}
		if r := m.controller.Render(); r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// Dispose disposes every owned controller. Later updates are no-ops.
func (g *Group) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	for _, key := range g.keys {
		if m, ok := g.members[key]; ok {
			m.controller.Dispose()
		}
	}
	g.keys = nil
	g.members = nil
	g.desired = nil
}

func (g *Group) reportMisuse(op string) {
	if g.misuseReported {
		return
	}
	g.misuseReported = true
	drifterrors.ReportLifecycle(op, "")
}

// childMapping returns the keys of children in first-seen order and the
// child for each key. A repeated key keeps its first position and takes
// the last value.
func childMapping(children []Child) ([]string, map[string]Child) {
	keys := make([]string, 0, len(children))
	mapping := make(map[string]Child, len(children))
	for i, child := range children {
		key := child.Key
		if key == "" {
			key = "." + strconv.Itoa(i)
			child.Key = key
		}
		if _, seen := mapping[key]; !seen {
			keys = append(keys, key)
		}
		mapping[key] = child
	}
	return keys, mapping
}

// mergeKeys interleaves prev and next. Keys present in both keep next's
// order; keys only in prev are placed before the next shared key that
// followed them in prev, or at the end.
func mergeKeys(prev, next []string, nextSet map[string]Child) []string {
	pendingBefore := make(map[string][]string)
	var pending []string
	for _, key := range prev {
		if _, ok := nextSet[key]; ok {
			if len(pending) > 0 {
				pendingBefore[key] = pending
				pending = nil
			}
			continue
		}
		pending = append(pending, key)
	}

	merged := make([]string, 0, len(next)+len(prev))
	for _, key := range next {
		merged = append(merged, pendingBefore[key]...)
		merged = append(merged, key)
	}
	return append(merged, pending...)
}

func keySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

func snapshot(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}
