// internal/domain/user/entity_test.go
package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItemsIncrement(t *testing.T) {
	items := CartItems{}

	items.Increment("tomato")
	assert.Equal(t, int64(1), items["tomato"])

	items.Increment("tomato")
	assert.Equal(t, int64(2), items["tomato"])

	items.Increment("onion")
	assert.Equal(t, int64(1), items["onion"])
	assert.Len(t, items, 2)
}

func TestCartItemsSetQuantity(t *testing.T) {
	items := CartItems{"tomato": 2}

	items.SetQuantity("tomato", 5)
	assert.Equal(t, int64(5), items["tomato"])

	items.SetQuantity("tomato", 0)
	assert.NotContains(t, items, "tomato")

	items.SetQuantity("onion", -1)
	assert.NotContains(t, items, "onion")
}

func TestCartItemsRemove(t *testing.T) {
	items := CartItems{"tomato": 2, "onion": 1}

	items.Remove("tomato")
	assert.NotContains(t, items, "tomato")
	assert.Equal(t, int64(1), items["onion"])

	// Removing an absent id is a no-op
	items.Remove("potato")
	assert.Len(t, items, 1)
}

func TestCartItemsQuantityAndContains(t *testing.T) {
	items := CartItems{"tomato": 2}

	assert.Equal(t, int64(2), items.Quantity("tomato"))
	assert.Zero(t, items.Quantity("onion"))
	assert.True(t, items.Contains("tomato"))
	assert.False(t, items.Contains("onion"))
}

func TestCartItemsClone(t *testing.T) {
	original := CartItems{"tomato": 2}
	clone := original.Clone()

	clone.Increment("tomato")
	clone.Increment("onion")

	assert.Equal(t, int64(2), original["tomato"])
	assert.NotContains(t, original, "onion")
	assert.Equal(t, int64(3), clone["tomato"])
}

func TestHasCompletedProfile(t *testing.T) {
	assert.False(t, (&Profile{}).HasCompletedProfile())
	assert.False(t, (&Profile{Name: "   "}).HasCompletedProfile())
	assert.True(t, (&Profile{Name: "Priya"}).HasCompletedProfile())
}

func TestAddressesUpsertFirstAddressBecomesDefault(t *testing.T) {
	addresses := Addresses{}.Upsert(Address{ID: "a1", Name: "Home"}, false)

	require.Len(t, addresses, 1)
	assert.True(t, addresses[0].IsDefault)
}

func TestAddressesUpsertNewDefaultDemotesOthers(t *testing.T) {
	addresses := Addresses{
		{ID: "a1", IsDefault: true},
		{ID: "a2"},
	}

	addresses = addresses.Upsert(Address{ID: "a3"}, true)

	require.Len(t, addresses, 3)
	defaults := 0
	for _, addr := range addresses {
		if addr.IsDefault {
			defaults++
			assert.Equal(t, "a3", addr.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestAddressesUpsertNonDefaultKeepsExistingDefault(t *testing.T) {
	addresses := Addresses{
		{ID: "a1", IsDefault: true},
	}

	addresses = addresses.Upsert(Address{ID: "a2"}, false)

	require.Len(t, addresses, 2)
	defaultAddr, ok := addresses.Default()
	require.True(t, ok)
	assert.Equal(t, "a1", defaultAddr.ID)
}

func TestAddressesUpsertReplacesExistingEntry(t *testing.T) {
	addresses := Addresses{
		{ID: "a1", Name: "Old", IsDefault: true},
		{ID: "a2"},
	}

	addresses = addresses.Upsert(Address{ID: "a1", Name: "New"}, true)

	require.Len(t, addresses, 2)
	updated, ok := addresses.Find("a1")
	require.True(t, ok)
	assert.Equal(t, "New", updated.Name)
	assert.True(t, updated.IsDefault)
}

func TestAddressesWithDefault(t *testing.T) {
	addresses := Addresses{
		{ID: "a1", IsDefault: true},
		{ID: "a2"},
		{ID: "a3"},
	}

	updated := addresses.WithDefault("a2")

	defaultAddr, ok := updated.Default()
	require.True(t, ok)
	assert.Equal(t, "a2", defaultAddr.ID)

	defaults := 0
	for _, addr := range updated {
		if addr.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)

	// The original list is untouched
	assert.True(t, addresses[0].IsDefault)
}

func TestAddressesRemovePromotesFirstRemaining(t *testing.T) {
	addresses := Addresses{
		{ID: "a1", IsDefault: true},
		{ID: "a2"},
		{ID: "a3"},
	}

	updated := addresses.Remove("a1")

	require.Len(t, updated, 2)
	assert.Equal(t, "a2", updated[0].ID)
	assert.True(t, updated[0].IsDefault)
	assert.False(t, updated[1].IsDefault)
}

func TestAddressesRemoveNonDefaultKeepsDefault(t *testing.T) {
	addresses := Addresses{
		{ID: "a1", IsDefault: true},
		{ID: "a2"},
	}

	updated := addresses.Remove("a2")

	require.Len(t, updated, 1)
	assert.Equal(t, "a1", updated[0].ID)
	assert.True(t, updated[0].IsDefault)
}

func TestAddressesRemoveLastLeavesEmptyList(t *testing.T) {
	addresses := Addresses{{ID: "a1", IsDefault: true}}

	updated := addresses.Remove("a1")

	assert.Empty(t, updated)
}

func TestAddressesDefaultNoneFlagged(t *testing.T) {
	addresses := Addresses{{ID: "a1"}, {ID: "a2"}}

	_, ok := addresses.Default()
	assert.False(t, ok)
}

func TestComposeAddressLine(t *testing.T) {
	tests := []struct {
		name     string
		house    string
		area     string
		landmark string
		want     string
	}{
		{
			name:     "all parts",
			house:    "42/1",
			area:     "Jayanagar 4th Block",
			landmark: "Cool Joint",
			want:     "42/1, Jayanagar 4th Block, Near Cool Joint",
		},
		{
			name:  "no landmark",
			house: "42/1",
			area:  "Jayanagar 4th Block",
			want:  "42/1, Jayanagar 4th Block",
		},
		{
			name:     "whitespace trimmed",
			house:    " 42/1 ",
			area:     " Jayanagar ",
			landmark: " Cool Joint ",
			want:     "42/1, Jayanagar, Near Cool Joint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComposeAddressLine(tt.house, tt.area, tt.landmark))
		})
	}
}
