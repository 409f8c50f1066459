package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "모든 필드",
			info: Info{Version: "v1.0.0", Commit: "f25b8bf1234567", BuildNumber: "12", BuildDate: "2025-01-01", GoVersion: "go1.22.0", OS: "linux", Arch: "amd64"},
			want: "v1.0.0 (commit: f25b8bf, build: 12, date: 2025-01-01, go: go1.22.0, linux/amd64)",
		},
		{
			name: "dirty 빌드",
			info: Info{Version: "v1.0.0", DirtyBuild: true},
			want: "v1.0.0+dirty",
		},
		{
			name: "unknown 값은 생략",
			info: Info{Version: "v1.0.0", Commit: unknown, BuildDate: unknown},
			want: "v1.0.0",
		},
		{
			name: "버전 없음",
			info: Info{},
			want: unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestEnrich(t *testing.T) {
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })

	t.Run("VCS 정보로 보완", func(t *testing.T) {
		readBuildInfo = func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{
				Main: debug.Module{Version: "v0.3.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abcdef0"},
					{Key: "vcs.time", Value: "2025-02-02T00:00:00Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			}, true
		}

		bi := enrich(Info{})
		assert.Equal(t, "v0.3.0", bi.Version)
		assert.Equal(t, "abcdef0", bi.Commit)
		assert.Equal(t, "2025-02-02T00:00:00Z", bi.BuildDate)
		assert.True(t, bi.DirtyBuild)
		assert.Equal(t, runtime.Version(), bi.GoVersion)
		assert.Equal(t, runtime.GOOS, bi.OS)
		assert.Equal(t, runtime.GOARCH, bi.Arch)
	})

	t.Run("주입된 값 우선", func(t *testing.T) {
		readBuildInfo = func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abcdef0"}},
			}, true
		}

		bi := enrich(Info{Version: "v1.0.0", Commit: "1234567"})
		assert.Equal(t, "v1.0.0", bi.Version)
		assert.Equal(t, "1234567", bi.Commit)
	})

	t.Run("정보 없음", func(t *testing.T) {
		readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }

		bi := enrich(Info{Commit: "none"})
		assert.Equal(t, unknown, bi.Version)
		assert.Equal(t, unknown, bi.Commit)
		assert.Equal(t, unknown, bi.BuildDate)
	})
}

func TestGet(t *testing.T) {
	bi := Get()
	assert.NotEmpty(t, bi.Version)
	assert.Equal(t, bi, Get())
	assert.Equal(t, bi.Version, Version())
	assert.Equal(t, bi.Version, bi.ToMap()["version"])
}
