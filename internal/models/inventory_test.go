package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryDeduplicatesByName(t *testing.T) {
	inv := NewInventory("https://example.com")

	require.True(t, inv.Add(MatchRecord{Name: "WooCommerce", Kind: KindPlugin, Evidence: "first"}))
	require.False(t, inv.Add(MatchRecord{Name: "WooCommerce", Kind: KindPlugin, Evidence: "second"}))
	require.False(t, inv.Add(MatchRecord{Name: "woocommerce", Kind: KindPlugin, Evidence: "third"}))

	require.Equal(t, 1, inv.Len())
	assert.Equal(t, "first", inv.Records()[0].Evidence, "first evidence wins")
}

func TestInventoryPreservesFirstSeenOrder(t *testing.T) {
	inv := NewInventory("https://example.com")
	inv.Add(MatchRecord{Name: "Elementor", Kind: KindPlugin})
	inv.Add(MatchRecord{Name: "storefront", Kind: KindTheme})
	inv.Add(MatchRecord{Name: "WooCommerce", Kind: KindPlugin})

	records := inv.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "Elementor", records[0].Name)
	assert.Equal(t, "storefront", records[1].Name)
	assert.Equal(t, "WooCommerce", records[2].Name)

	plugins := inv.Plugins()
	require.Len(t, plugins, 2)
	assert.Equal(t, "Elementor", plugins[0].Name)
	assert.Equal(t, "WooCommerce", plugins[1].Name)
}

func TestInventoryMerge(t *testing.T) {
	first := NewInventory("https://example.com")
	first.Add(MatchRecord{Name: "WooCommerce", Kind: KindPlugin, Evidence: "html pass"})

	second := NewInventory("https://example.com")
	second.Add(MatchRecord{Name: "WooCommerce", Kind: KindPlugin, Evidence: "asset pass"})
	second.Add(MatchRecord{Name: "Jetpack", Kind: KindPlugin})

	first.Merge(second)

	require.Equal(t, 2, first.Len())
	assert.Equal(t, "html pass", first.Records()[0].Evidence)
	assert.Equal(t, "Jetpack", first.Records()[1].Name)
}

func TestInventoryThemeResolution(t *testing.T) {
	inv := NewInventory("https://example.com")
	inv.Add(MatchRecord{Name: "storefront-child", Kind: KindTheme})
	inv.Add(MatchRecord{Name: "storefront", Kind: KindTheme})

	assert.Equal(t, "storefront", inv.MainTheme())
	assert.Equal(t, "storefront-child", inv.ChildTheme())
}

func TestInventoryThemeResolutionEmpty(t *testing.T) {
	inv := NewInventory("https://example.com")
	assert.Empty(t, inv.MainTheme())
	assert.Empty(t, inv.ChildTheme())
}
