// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-auth-flow/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := strings.Join([]string{
		"Название приложения: GoAuthFlow",
		"Версия: " + valueOrNA(info.BuildVersion()),
		"Дата: " + valueOrNA(info.BuildDate()),
		"Коммит: " + valueOrNA(info.BuildCommit()),
	}, "\n")

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", body, "esc: назад")
}
