package catalog

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"AmbientFM/logger"
	"AmbientFM/model"
)

// ErrEmptyCatalog is returned when a random pick is requested from a catalog with no assets.
var ErrEmptyCatalog = errors.New("no ambient sound available")

// Catalog is a snapshot of the sound directory taken at Scan time.
// It is not refreshed when the directory changes; use Watch for new snapshots.
type Catalog struct {
	dir    string
	assets []model.AudioAsset
}

// New builds a catalog over an explicit asset list. Mostly useful in tests.
func New(dir string, assets []model.AudioAsset) *Catalog {
	return &Catalog{dir: dir, assets: append([]model.AudioAsset(nil), assets...)}
}

// Scan 扫描目录并构建音频列表
// Every non-hidden entry becomes an asset, subdirectories included.
func Scan(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound directory %s: %w", dir, err)
	}

	assets := make([]model.AudioAsset, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name, ext := splitExt(entry.Name())
		assets = append(assets, model.AudioAsset{Name: name, Extension: ext})
	}

	c := &Catalog{dir: dir, assets: assets}
	logger.Debug("[Catalog] sound directory scanned",
		logger.String("dir", dir),
		logger.Strings("sounds", c.Names()))
	return c, nil
}

func splitExt(base string) (string, string) {
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext), ext
}

// Dir returns the scanned directory.
func (c *Catalog) Dir() string {
	return c.dir
}

// Assets returns a copy of the assets in scan order.
func (c *Catalog) Assets() []model.AudioAsset {
	return append([]model.AudioAsset(nil), c.assets...)
}

// Len 返回音频数量
func (c *Catalog) Len() int {
	return len(c.assets)
}

// Names returns asset names in scan order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.assets))
	for i, a := range c.assets {
		names[i] = a.Name
	}
	return names
}

// FindByName returns the first asset with the given name.
func (c *Catalog) FindByName(name string) (model.AudioAsset, bool) {
	for _, a := range c.assets {
		if a.Name == name {
			return a, true
		}
	}
	return model.AudioAsset{}, false
}

// PickRandom 随机选择一个音频
func (c *Catalog) PickRandom() (model.AudioAsset, error) {
	if len(c.assets) == 0 {
		return model.AudioAsset{}, ErrEmptyCatalog
	}
	return c.assets[rand.Intn(len(c.assets))], nil
}

// Path resolves an asset to its file path inside the catalog directory.
func (c *Catalog) Path(a model.AudioAsset) string {
	return filepath.Join(c.dir, a.FileName())
}
