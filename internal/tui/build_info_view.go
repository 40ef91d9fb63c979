// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-pass-vault/models"

const appTitle = "PASSWORD MANAGER"

func renderBanner(info models.AppBuildInfo) string {
	return bannerStyle.Render(appTitle) + "\n" + helpStyle.Render(info.Summary())
}
