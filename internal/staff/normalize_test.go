package staff_test

import (
	"testing"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/staff"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"みか", "みか"},
		{"ミカ", "みか"},
		{"みか（12）", "みか"},
		{"みか(22)", "みか"},
		{"　ゆい　", "ゆい"},
		{"あんな123", "あんな"},
		{"りん♡", "りん"},
		{"", ""},
		{"（12）", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, staff.NormalizeName(c.raw), "raw=%q", c.raw)
	}
}

func TestCanonicalID(t *testing.T) {
	assert.Equal(t, "00600037", staff.CanonicalID("600037"))
	assert.Equal(t, "00600037", staff.CanonicalID("00600037"))
	assert.Equal(t, "00600037", staff.CanonicalID(" 600037 "))
	assert.Equal(t, "00000001", staff.CanonicalID("1"))
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, staff.IsCanonical("00600037"))
	assert.False(t, staff.IsCanonical("600037"))
	assert.False(t, staff.IsCanonical("0060003a"))
	assert.False(t, staff.IsCanonical("006000377"))
	assert.False(t, staff.IsCanonical(""))
}
