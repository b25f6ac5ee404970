package src

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/ChronoRixun/devyan/src/ui"
)

type projectItem struct {
	name string
	size int64
}

func (p projectItem) Title() string       { return "📁 " + p.name }
func (p projectItem) Description() string { return ui.HumanSize(p.size) }
func (p projectItem) FilterValue() string { return p.name }

// loadProjects lists generated project directories, newest first. The
// timestamp suffix in the directory name makes lexical order chronological.
func loadProjects(outputDir string) []list.Item {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return []list.Item{projectItem{name: "(no projects yet)"}}
	}

	var items []list.Item
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), "direct_") {
			continue
		}
		items = append(items, projectItem{
			name: e.Name(),
			size: dirSize(filepath.Join(outputDir, e.Name())),
		})
	}
	if len(items) == 0 {
		return []list.Item{projectItem{name: "(no projects yet)"}}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].(projectItem).name > items[j].(projectItem).name
	})
	return items
}

func dirSize(dir string) int64 {
	var total int64
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	for _, e := range entries {
		if info, err := e.Info(); err == nil && !e.IsDir() {
			total += info.Size()
		}
	}
	return total
}
