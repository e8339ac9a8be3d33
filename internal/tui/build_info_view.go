// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/voyager/models"
)

// renderBuildInfoWindow shows the client build next to what the server
// reported. serverErr replaces the server block when the lookup failed.
func renderBuildInfoWindow(info models.AppBuildInfo, server models.AppInfo, serverErr error) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("voyager client"))
	b.WriteString("\n")
	writeBuildRows(&b, info.BuildVersion(), info.BuildDate(), info.BuildCommit())

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("voyager server"))
	b.WriteString("\n")
	if serverErr != nil {
		b.WriteString(errorStyle.Render(humanizeError(serverErr)))
	} else {
		writeBuildRows(&b, server.Version, server.BuildDate, server.BuildCommit)
	}

	return renderPage("ABOUT", strings.TrimRight(b.String(), "\n"), "esc: back")
}

func writeBuildRows(b *strings.Builder, version, date, commit string) {
	for _, row := range [][2]string{{"version", version}, {"built", date}, {"commit", commit}} {
		fmt.Fprintf(b, "  %-8s %s\n", row[0], valueOrNA(row[1]))
	}
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "n/a"
	}
	return v
}
