// Package export produces static artifacts from a scene: SVG snapshots of
// the orbit geometry and CSV ephemerides of sampled body positions.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/orrery/internal/scene"
)

// SceneSVG renders the current frame's orbit paths and body positions as a
// standalone SVG using the scene's own camera transform, so the snapshot
// matches what the interactive view shows.
func SceneSVG(s *scene.Scene) string {
	width := int(s.Camera.ViewportW)
	height := int(s.Camera.ViewportH)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#06080e"/>
`, width, height, width, height))

	for i, b := range s.Bodies {
		path := s.OrbitPath(i, scene.OrbitSegments)
		if path == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-opacity="0.35" stroke-width="1" d="M`,
			svgColor(b.Color)))
		for k, p := range path {
			px, py := s.Camera.ToScreen(p[0], p[1])
			if k == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
			}
		}
		sb.WriteString("\"/>\n")
	}

	// Star last among paths, first among disks, so it sits under nothing.
	for pass := 0; pass < 2; pass++ {
		for i, b := range s.Bodies {
			if b.IsStar() != (pass == 0) {
				continue
			}
			px, py := s.BodyScreen(i)
			r := s.BodyPixelRadius(i)
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, px, py, r, svgColor(b.Color)))
			if s.ShowLabels && !b.IsStar() {
				sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#969baa" font-size="12" font-family="monospace">%s</text>
`, px+r+5, py+4, b.Name))
			}
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func svgColor(hex string) string {
	if len(hex) == 7 && hex[0] == '#' {
		return hex
	}
	return "#c8cddc"
}
