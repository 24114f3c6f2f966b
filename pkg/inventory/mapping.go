package inventory

import (
	"os"
	"path/filepath"
)

// Fixed documentation sets published alongside the per-package docs: the
// umbrella project, the helm chart and the client sdk, plus two unversioned
// top-level sets.
var (
	CorePackages     = []string{"storage-transfer", "helm-chart", "client-sdk"}
	TopLevelPackages = []string{"storage-transfer-providers", "docker-stack"}
)

// Entry maps a documentation package to its base url and the inventory file
// resolved for it.
type Entry struct {
	BaseUrl     string
	Inventories []string
}

type Mapping map[string]Entry

// BuildMapping resolves the cross-reference inventory for every known
// package. A freshly built inventory under _build is preferred over the
// cached copy; packages with neither file are silently omitted, as partial
// inventories are normal during incremental doc builds. The package being
// built is skipped so it never references itself. The result is deterministic
// given the filesystem state at call time.
func BuildMapping(rootDir string, version string, packages []string, currentPackage string) Mapping {
	mapping := Mapping{}

	for _, pkg := range packages {
		if pkg == currentPackage {
			continue
		}
		docInventory := filepath.Join(rootDir, "_build", "docs", pkg, version, "objects.inv")
		cacheInventory := filepath.Join(rootDir, "_inventory_cache", pkg, "objects.inv")

		// Skip adding the mapping if the path does not exist
		if !exists(docInventory) && !exists(cacheInventory) {
			continue
		}
		mapping[pkg] = Entry{
			BaseUrl:     "/docs/" + pkg + "/" + version + "/",
			Inventories: []string{preferred(docInventory, cacheInventory)},
		}
	}

	for _, pkg := range CorePackages {
		if pkg == currentPackage {
			continue
		}
		docInventory := filepath.Join(rootDir, "_build", "docs", pkg, version, "objects.inv")
		cacheInventory := filepath.Join(rootDir, "_inventory_cache", pkg, "objects.inv")

		mapping[pkg] = Entry{
			BaseUrl:     "/docs/" + pkg + "/stable/",
			Inventories: []string{preferred(docInventory, cacheInventory)},
		}
	}

	for _, pkg := range TopLevelPackages {
		if pkg == currentPackage {
			continue
		}
		docInventory := filepath.Join(rootDir, "_build", "docs", pkg, "objects.inv")
		cacheInventory := filepath.Join(rootDir, "_inventory_cache", pkg, "objects.inv")

		mapping[pkg] = Entry{
			BaseUrl:     "/docs/" + pkg + "/",
			Inventories: []string{preferred(docInventory, cacheInventory)},
		}
	}
	return mapping
}

// preferred picks the freshly built inventory when it exists, falling back
// to the cached one.
func preferred(docInventory string, cacheInventory string) string {
	if exists(docInventory) {
		return docInventory
	}
	return cacheInventory
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
