// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-writenest/internal/app"
	"github.com/MKhiriev/go-writenest/internal/service"
)

// errorText is what notifications show for err. Transport failures become
// the generic "server unavailable" line; form problems are listed under
// a heading.
func errorText(err error) string {
	if err == nil {
		return ""
	}
	return service.Message(err)
}

// formErrorsText renders the problems of a rejected post form as a list.
func formErrorsText(err error) string {
	lines := strings.Split(errorText(err), "\n")

	var b strings.Builder
	b.WriteString(app.MsgFixErrors)
	for _, line := range lines {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		b.WriteString("\n- ")
		b.WriteString(line)
	}
	return b.String()
}
