package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeForPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"Content/Maps/Overworld.umap", "Map"},
		{"Content/Characters/Player.uexp", "Asset Data"},
		{"Content/Characters/Player.ubulk", "Asset Bulk Data"},
		{"Paks/Game.pak", "Package"},
		{"Content/Textures/Sky.uasset", "Texture2D"},
		{"Content/Props/Rock_Diffuse.uasset", "Texture2D"},
		{"Content/Materials/Steel.uasset", "Material"},
		{"Content/Meshes/Tree.uasset", "Static Mesh"},
		{"Content/Blueprints/BP_Door.uasset", "Blueprint"},
		{"Content/UI/WBP_MainMenu.uasset", "Widget Blueprint"},
		{"Content/Audio/Wind.uasset", "Sound Wave"},
		{"Content/Animations/Run.uasset", "Animation"},
		{"Content/Particles/Spark.uasset", "Particle System"},
		{"Content/Misc/Thing.uasset", "Asset"},
		{"README.txt", "Unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, TypeForPath(tc.path))
		})
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"Content/Blueprints/BP_Main_Door.uasset", "Main Door"},
		{"Content/Textures/T_Sky_Night.uasset", "Sky Night"},
		{"Content/Meshes/SM_Rock.uasset", "Rock"},
		{"Content/UI/WBP_PauseMenu.uasset", "Pausemenu"},
		{"Content/Props/plain_crate.uasset", "Plain Crate"},
		{"Crate.uasset", "Crate"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, DisplayName(tc.path))
		})
	}
}

func TestFilter(t *testing.T) {
	catalog := MockCatalog()

	t.Run("by type", func(t *testing.T) {
		got := Filter(catalog, "texture", "")
		require.Len(t, got, 1)
		assert.Equal(t, "MainMenuBackground", got[0].Name)
	})

	t.Run("by search over name and path", func(t *testing.T) {
		got := Filter(catalog, "", "weapons")
		require.Len(t, got, 1)
		assert.Equal(t, "WeaponSwordMaterial", got[0].Name)
	})

	t.Run("no filters keeps everything", func(t *testing.T) {
		assert.Len(t, Filter(catalog, "", ""), len(catalog))
	})
}

func TestNames(t *testing.T) {
	names := Names(MockCatalog())
	assert.Contains(t, names, "PlayerCharacterMesh")
	assert.Len(t, names, 5)
}

func TestMockDependenciesMatchCatalog(t *testing.T) {
	catalog := MockCatalog()
	deps := MockDependencies()

	names := map[string]struct{}{}
	for _, a := range catalog {
		names[a.Name] = struct{}{}
	}
	for source := range deps.Deps {
		_, ok := names[source]
		assert.True(t, ok, "mock dependency source %q missing from mock catalog", source)
	}
}

func TestPlaceholderDependencies(t *testing.T) {
	assert.Equal(t,
		[]string{"CharacterMaterial", "CharacterSkeleton", "CharacterAnimBlueprint"},
		PlaceholderDependencies("Content/Characters/Hero.uasset"))
	assert.Equal(t,
		[]string{"Crate_DefaultDependency"},
		PlaceholderDependencies("Content/Props/Crate.uasset"))
}
