package templates

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOrder(t *testing.T) {
	want := []string{"CMakeLists.txt", "src/main.cpp", "src/wm.cpp", "include/wm.h"}
	assert.Equal(t, want, Default().Paths())
}

func TestDefaultContentIsPinned(t *testing.T) {
	// Digests of the payload bytes. A change here changes every generated project.
	want := map[string]struct {
		sum  string
		size int
	}{
		"CMakeLists.txt": {"ce4d5c00bb71ff93a2b2918daaaaa9aa3a7af7d3be5b1a333c68b5e843d9e05e", 415},
		"src/main.cpp":   {"bd3c566225a9d7dda947945fa21288ff9705e87d214fa1a88f3228bd52001492", 82},
		"src/wm.cpp":     {"2c186f1ded5a968ccbedf8341bac70301b36e8b18c23859806b86263cfde07df", 737},
		"include/wm.h":   {"0c8c9d0ac6a43f5c194eacbd63fcf390a9e5e3eaaaa7a0cae3cc7d6a8ab49bdb", 213},
	}

	for _, e := range Default() {
		t.Run(e.Path, func(t *testing.T) {
			w, ok := want[e.Path]
			require.True(t, ok, "unexpected entry %s", e.Path)
			sum := sha256.Sum256([]byte(e.Content))
			assert.Equal(t, w.size, len(e.Content))
			assert.Equal(t, w.sum, hex.EncodeToString(sum[:]))
		})
	}
}

func TestDefaultContent(t *testing.T) {
	c := Default()

	cmake, ok := c.Lookup("CMakeLists.txt")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(cmake.Content, "cmake_minimum_required(VERSION 3.10)\n"))
	assert.Contains(t, cmake.Content, "target_link_libraries(tiling-wm X11)\n")

	wm, ok := c.Lookup("src/wm.cpp")
	require.True(t, ok)
	assert.Contains(t, wm.Content, `std::cerr << "Failed to open X display\n";`)
	assert.NotContains(t, wm.Content, "\r\n")

	header, ok := c.Lookup("include/wm.h")
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(header.Content, "#endif // WM_H\n"))

	_, ok = c.Lookup("src/missing.cpp")
	assert.False(t, ok)
}

func TestDefaultReturnsCopy(t *testing.T) {
	c := Default()
	c[0].Content = "mutated"

	fresh := Default()
	assert.Len(t, fresh, 4)
	assert.NotEqual(t, "mutated", fresh[0].Content)
}

func TestValidateDefault(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		reason  string
	}{
		{"empty path", Catalog{{Path: ""}}, "empty path"},
		{"absolute", Catalog{{Path: "/etc/passwd"}}, "absolute path"},
		{"windows volume", Catalog{{Path: "C:/wm.h"}}, "absolute path"},
		{"backslash", Catalog{{Path: `src\wm.cpp`}}, "backslash"},
		{"parent traversal", Catalog{{Path: "../escape.txt"}}, `".." segment`},
		{"nested traversal", Catalog{{Path: "src/../../escape.txt"}}, `".." segment`},
		{"dot segment", Catalog{{Path: "./CMakeLists.txt"}}, `"." segment`},
		{"double slash", Catalog{{Path: "src//wm.cpp"}}, "empty path segment"},
		{"trailing slash", Catalog{{Path: "src/"}}, "empty path segment"},
		{"duplicate", Catalog{{Path: "a.txt"}, {Path: "b.txt"}, {Path: "a.txt"}}, "duplicate path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			require.Error(t, err)

			var invalid *InvalidEntryError
			require.True(t, errors.As(err, &invalid))
			assert.Contains(t, invalid.Reason, tt.reason)
			assert.Contains(t, err.Error(), "invalid template path")
		})
	}
}

func TestValidateEmptyCatalog(t *testing.T) {
	assert.NoError(t, Catalog{}.Validate())
}
