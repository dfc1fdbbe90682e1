// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/ulmaulana/FHETalk-sub001/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	info = info.Normalize()

	var b strings.Builder
	b.WriteString("Application: FHETalk\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion)
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.BuildDate)
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.BuildCommit)

	return renderPage("ABOUT", overlayBoxStyle.Render(b.String()), "esc: back")
}
