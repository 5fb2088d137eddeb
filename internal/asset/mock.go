package asset

import (
	"strings"
	"time"

	"github.com/AreyMadhav/PakSeek/internal/depgraph"
)

// MockCatalog returns the built-in development catalog used when no
// archives are found at the scan root, so the UI always has something to
// render.
func MockCatalog() []Asset {
	now := time.Now().UTC()
	return []Asset{
		{
			Name:         "PlayerCharacterMesh",
			Type:         "mesh",
			Size:         2_457_600,
			Path:         "/Game/Characters/Player/PlayerCharacterMesh.uasset",
			LastModified: now.Add(-5 * 24 * time.Hour),
			Metadata: map[string]any{
				"vertices":  15420,
				"triangles": 8932,
				"materials": []string{"PlayerSkin", "PlayerClothes"},
			},
		},
		{
			Name:         "MainMenuBackground",
			Type:         "texture",
			Size:         4_194_304,
			Path:         "/Game/UI/Textures/MainMenuBackground.uasset",
			LastModified: now.Add(-2 * 24 * time.Hour),
			Metadata: map[string]any{
				"resolution": "1920x1080",
				"format":     "DXT5",
				"mip_levels": 11,
			},
		},
		{
			Name:         "AmbientForestLoop",
			Type:         "audio",
			Size:         1_048_576,
			Path:         "/Game/Audio/Ambient/AmbientForestLoop.uasset",
			LastModified: now.Add(-24 * time.Hour),
			Metadata: map[string]any{
				"duration":    "00:02:30",
				"sample_rate": 44100,
				"channels":    2,
				"compression": "Vorbis",
			},
		},
		{
			Name:         "WeaponSwordMaterial",
			Type:         "material",
			Size:         512_000,
			Path:         "/Game/Weapons/Materials/WeaponSwordMaterial.uasset",
			LastModified: now.Add(-3 * 24 * time.Hour),
			Metadata: map[string]any{
				"shader":   "DefaultLit",
				"textures": []string{"SwordDiffuse", "SwordNormal", "SwordRoughness"},
			},
		},
		{
			Name:         "ExplosionParticles",
			Type:         "particle_system",
			Size:         768_000,
			Path:         "/Game/VFX/Particles/ExplosionParticles.uasset",
			LastModified: now.Add(-12 * time.Hour),
			Metadata: map[string]any{
				"max_particles": 500,
				"duration":      2.5,
				"emitters":      3,
			},
		},
	}
}

// MockDependencies returns the development dependency map matching
// MockCatalog.
func MockDependencies() *depgraph.Map {
	m := depgraph.New()
	m.Deps["PlayerCharacterMesh"] = []string{"PlayerSkinTexture", "PlayerClothesTexture", "PlayerMaterial"}
	m.Deps["MainMenuBackground"] = []string{"UIShader"}
	m.Deps["WeaponSwordMaterial"] = []string{"SwordDiffuseTexture", "SwordNormalTexture", "SwordRoughnessTexture", "DefaultLitShader"}
	m.Deps["ExplosionParticles"] = []string{"ExplosionTexture", "ParticleShader", "ExplosionSound"}
	return m
}

// PlaceholderDependencies guesses dependency names for a packaged file
// path. Real dependency extraction needs the uasset import tables, which
// the placeholder parsers do not read yet, so this substitutes common
// patterns keyed off the path.
func PlaceholderDependencies(path string) []string {
	switch {
	case strings.Contains(path, "Character"):
		return []string{"CharacterMaterial", "CharacterSkeleton", "CharacterAnimBlueprint"}
	case strings.Contains(path, "Material"):
		return []string{"BaseTexture", "NormalMap", "MaterialShader"}
	case strings.Contains(path, "Audio"):
		return []string{"AudioMixer", "SoundCue"}
	default:
		return []string{stem(path) + "_DefaultDependency"}
	}
}

// stem is the base name of a path without its extension.
func stem(path string) string {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}
