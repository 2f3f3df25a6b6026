package layered

import (
	"strings"

	"github.com/mark/elkgo/pkg/options"
)

const labelNodeSpacing = 5.0

// placeLabels implements Phase 9: elk.nodeLabels.placement is a
// whitespace-separated token set drawn from
// {INSIDE, OUTSIDE, H_LEFT, H_CENTER, H_RIGHT, V_TOP, V_CENTER, V_BOTTOM}.
func placeLabels(nodes []*lnode, global map[string]interface{}) {
	for _, n := range nodes {
		if n.isDummy || len(n.labels) == 0 {
			continue
		}

		placement := ""
		if n.original != nil {
			placement = options.GetString(n.original, "elk.nodeLabels.placement", "")
			if placement == "" {
				eff := options.EffectiveOptions(n.original, global, nil)
				if v, ok := eff["elk.nodeLabels.placement"]; ok {
					placement, _ = v.(string)
				}
			}
		}
		tokens := strings.Fields(placement)
		set := make(map[string]bool, len(tokens))
		for _, t := range tokens {
			set[t] = true
		}

		outside := set["OUTSIDE"]

		for _, label := range n.labels {
			lw, lh := label.Width, label.Height

			var x float64
			switch {
			case set["H_LEFT"]:
				x = 0
			case set["H_RIGHT"]:
				x = n.width - lw
			default:
				x = (n.width - lw) / 2
			}

			var y float64
			if outside {
				switch {
				case set["V_TOP"]:
					y = -(lh + labelNodeSpacing)
				case set["V_BOTTOM"]:
					y = n.height + labelNodeSpacing
				default:
					y = (n.height - lh) / 2
				}
			} else {
				switch {
				case set["V_TOP"]:
					y = 0
				case set["V_BOTTOM"]:
					y = n.height - lh
				default:
					y = (n.height - lh) / 2
				}
			}

			label.X, label.Y = x, y
		}
	}
}
