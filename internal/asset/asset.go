// Package asset defines the asset catalog record and the path-based
// classification heuristics shared by the scanner and the HTTP layer.
package asset

import (
	"strings"
	"time"
)

// Asset is one entry of the browsable catalog. Archive-level fields
// (PakFile and below) are only set for assets that came out of a parsed
// archive, not for manually registered or mock entries.
type Asset struct {
	Name         string         `json:"name"`
	Type         string         `json:"asset_type"`
	Size         uint64         `json:"size"`
	Path         string         `json:"path"`
	LastModified time.Time      `json:"last_modified"`
	Metadata     map[string]any `json:"metadata,omitempty"`

	PakFile           string `json:"pak_file,omitempty"`
	CompressedSize    uint64 `json:"compressed_size,omitempty"`
	CompressionMethod string `json:"compression_method,omitempty"`
	IsEncrypted       bool   `json:"is_encrypted,omitempty"`
	Hash              string `json:"hash,omitempty"`
}

// Names returns the asset names of a catalog slice, in catalog order.
// This is the roster handed to the dependency statistics engine.
func Names(assets []Asset) []string {
	names := make([]string, len(assets))
	for i, a := range assets {
		names[i] = a.Name
	}
	return names
}

// Filter returns the catalog entries matching the optional type and search
// filters. An empty assetType matches everything; search matches
// case-insensitively against name and path.
func Filter(assets []Asset, assetType, search string) []Asset {
	filtered := make([]Asset, 0, len(assets))
	searchLower := strings.ToLower(search)
	for _, a := range assets {
		if assetType != "" && a.Type != assetType {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Name), searchLower) &&
			!strings.Contains(strings.ToLower(a.Path), searchLower) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

// uePrefixes are the conventional Unreal asset name prefixes stripped when
// deriving a display name. Longer prefixes come first so SM_ wins over S_.
var uePrefixes = []string{"WBP_", "BP_", "SM_", "SK_", "T_", "M_", "A_", "S_"}

// TypeForPath infers a coarse asset type from a packaged file path, using
// the file extension and, for .uasset files, directory and naming
// conventions.
func TypeForPath(filename string) string {
	lower := strings.ToLower(filename)

	switch {
	case strings.HasSuffix(lower, ".umap"):
		return "Map"
	case strings.HasSuffix(lower, ".uexp"):
		return "Asset Data"
	case strings.HasSuffix(lower, ".ubulk"):
		return "Asset Bulk Data"
	case strings.HasSuffix(lower, ".pak"):
		return "Package"
	case !strings.HasSuffix(lower, ".uasset"):
		return "Unknown"
	}

	switch {
	case strings.Contains(lower, "/textures/"), strings.Contains(lower, "_diffuse"),
		strings.Contains(lower, "_normal"), strings.Contains(lower, "_roughness"):
		return "Texture2D"
	case strings.Contains(lower, "/materials/"), strings.Contains(lower, "_mat"):
		return "Material"
	case strings.Contains(lower, "/meshes/"), strings.Contains(lower, "_mesh"),
		strings.Contains(lower, "/models/"):
		return "Static Mesh"
	case strings.Contains(lower, "/ui/"), strings.Contains(lower, "wbp_"):
		return "Widget Blueprint"
	case strings.Contains(lower, "/blueprints/"), strings.Contains(lower, "bp_"):
		return "Blueprint"
	case strings.Contains(lower, "/sounds/"), strings.Contains(lower, "/audio/"):
		return "Sound Wave"
	case strings.Contains(lower, "/animations/"), strings.Contains(lower, "_anim"):
		return "Animation"
	case strings.Contains(lower, "/particles/"), strings.Contains(lower, "_particles"):
		return "Particle System"
	default:
		return "Asset"
	}
}

// DisplayName derives a human-readable name from a packaged file path:
// the base name without extension, with the conventional UE prefix
// stripped, underscores turned into spaces, and words title-cased.
func DisplayName(filename string) string {
	base := filename
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	if base == "" {
		return filename
	}

	for _, prefix := range uePrefixes {
		if trimmed := strings.TrimPrefix(base, prefix); trimmed != base && trimmed != "" {
			base = trimmed
			break
		}
	}

	words := strings.Fields(strings.ReplaceAll(base, "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
