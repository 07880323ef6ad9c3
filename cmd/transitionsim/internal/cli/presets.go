package cli

import (
	"fmt"
	"strings"

	"github.com/go-drift/transition/pkg/transition"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the presets in the preset file",
	Long: `List every controller and group preset with its defaults filled in.

Examples:
  transitionsim presets
  transitionsim presets --presets ui/transitions.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		presets, err := loadPresets(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(presets.Presets) == 0 && len(presets.Groups) == 0 {
			fmt.Fprintln(out, colored(ColorMuted).Render("no presets defined"))
			return nil
		}

		for _, name := range presets.Names() {
			p, _ := presets.Lookup(name)
			props := p.Props()
			var flags []string
			if props.MountOnEnter {
				flags = append(flags, "mount-on-enter")
			}
			if props.UnmountOnExit {
				flags = append(flags, "unmount-on-exit")
			}
			if props.TransitionAppear {
				flags = append(flags, "appear")
			}
			fmt.Fprintf(out, "%-16s %s %v %s\n",
				colored(ColorInfo).Render(name), props.Animation, props.Duration, strings.Join(flags, ","))
		}
		for _, name := range presets.GroupNames() {
			g, _ := presets.Group(name)
			cfg := g.Config()
			component := cfg.Component
			if component == "" {
				component = transition.DefaultComponent
			}
			appear := ""
			if cfg.Appear {
				appear = "appear"
			}
			fmt.Fprintf(out, "%-16s <%s> %s %v %s\n",
				colored(ColorSecondary).Render("group:"+name), component, cfg.Animation, cfg.Duration, appear)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
