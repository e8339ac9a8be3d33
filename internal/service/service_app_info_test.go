// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voyager/internal/config"
	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/models"
)

func TestNewAppInfoService_ConfiguredVersionWins(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.NewAppBuildInfo("0.9.0", "2026-03-01", "abc123"), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", svc.GetAppVersion(context.Background()))
	assert.Equal(t, models.AppInfo{Version: "1.0.0", BuildDate: "2026-03-01", BuildCommit: "abc123"}, svc.GetAppInfo(context.Background()))
}

func TestNewAppInfoService_FallsBackToBuildVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.NewAppBuildInfo("0.9.0", "", ""), logger.Nop())
	require.NoError(t, err)

	info := svc.GetAppInfo(context.Background())
	assert.Equal(t, "0.9.0", info.Version)
	assert.Equal(t, "N/A", info.BuildDate)
	assert.Equal(t, "N/A", info.BuildCommit)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion_DifferentInstances_IndependentVersions(t *testing.T) {
	svc1, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	svc2, err := NewAppInfoService(config.App{Version: "v1.2.3-beta+build.42"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", svc1.GetAppVersion(context.Background()))
	assert.Equal(t, "v1.2.3-beta+build.42", svc2.GetAppVersion(context.Background()))
}
