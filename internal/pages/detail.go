package pages

import (
	"sync"

	"github.com/Zachkp/portfolio/internal/projects"
)

// ListingPath is where visitors land when a project cannot be found.
const ListingPath = "/projects"

// Navigator performs an imperative "go to path" on behalf of a page.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// OnceNavigator forwards only the first Navigate call to Next.
type OnceNavigator struct {
	Next Navigator
	once sync.Once
}

func (n *OnceNavigator) Navigate(path string) {
	n.once.Do(func() { n.Next.Navigate(path) })
}

// DetailState is the outcome of resolving a project page.
type DetailState int

const (
	DetailLoading DetailState = iota
	DetailRedirected
	DetailFound
)

// DetailResult carries the project and its neighbours when State is DetailFound.
type DetailResult struct {
	State    DetailState
	Project  projects.Project
	Previous projects.Project
	Next     projects.Project
	Position int
	Total    int
}

// ResolveDetail looks up slug in the snapshot. While the catalog is loading it
// takes no action. Once loaded, a missing slug sends the visitor to the listing
// exactly once through nav. This is evaluated on every request.
func ResolveDetail(snap projects.Snapshot, slug string, nav Navigator) DetailResult {
	if snap.IsLoading {
		return DetailResult{State: DetailLoading}
	}

	i, ok := projects.Find(snap.Projects, slug)
	if !ok {
		nav.Navigate(ListingPath)
		return DetailResult{State: DetailRedirected}
	}

	prev, next, _ := projects.Neighbors(snap.Projects, i)
	return DetailResult{
		State:    DetailFound,
		Project:  snap.Projects[i],
		Previous: prev,
		Next:     next,
		Position: i + 1,
		Total:    len(snap.Projects),
	}
}
