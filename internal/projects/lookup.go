package projects

import "github.com/Zachkp/portfolio/internal/circular"

// Find returns the index of the first project whose slug equals slug.
func Find(list []Project, slug string) (int, bool) {
	for i := range list {
		if list[i].Slug == slug {
			return i, true
		}
	}
	return -1, false
}

// Neighbors returns the projects before and after position i, wrapping at both
// ends. With a single project both neighbors are that project.
func Neighbors(list []Project, i int) (prev, next Project, ok bool) {
	n := len(list)
	if i < 0 || i >= n {
		return Project{}, Project{}, false
	}
	return list[circular.Prev(i, n)], list[circular.Next(i, n)], true
}

// Featured returns the featured projects in catalog order.
func Featured(list []Project) []Project {
	var out []Project
	for _, p := range list {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func Categories(list []Project) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range list {
		if _, ok := seen[p.Category]; ok || p.Category == "" {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// InCategory filters by category; an empty category keeps everything.
func InCategory(list []Project, category string) []Project {
	if category == "" {
		return list
	}
	var out []Project
	for _, p := range list {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
