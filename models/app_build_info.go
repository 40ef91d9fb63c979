// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// notAvailable stands in for build values a local build leaves empty.
const notAvailable = "N/A"

// AppBuildInfo identifies the passvault binary in its startup banner. The
// values are set with -ldflags at release time.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo trims the linker-provided values; blanks become empty.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: strings.TrimSpace(version),
		Date:    strings.TrimSpace(date),
		Commit:  strings.TrimSpace(commit),
	}
}

// Summary is the one-line description printed under the banner title.
func (a AppBuildInfo) Summary() string {
	return "version " + orNotAvailable(a.Version) +
		" │ built " + orNotAvailable(a.Date) +
		" │ commit " + orNotAvailable(a.Commit)
}

func orNotAvailable(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return notAvailable
	}
	return v
}
