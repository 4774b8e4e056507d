package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrent(t *testing.T) {
	oldV, oldD, oldC := Version, Date, Commit
	t.Cleanup(func() { Version, Date, Commit = oldV, oldD, oldC })

	Version, Date, Commit = "v1.2.0", "2026-10-19", "abc123"

	info := Current()
	assert.Equal(t, Info{Version: "v1.2.0", Date: "2026-10-19", Commit: "abc123"}, info)
	assert.Equal(t, "Version: v1.2.0, Date: 2026-10-19, Commit: abc123", info.String())
}
