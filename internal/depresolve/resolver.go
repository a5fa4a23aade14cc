// Package depresolve expands a single package into its transitive
// dependency closure. It is a collaborator of the planner (spec §4.1,
// §4.9 step 2): the planner never inspects a repository's dependency
// graph directly, it only ever calls through a Resolver.
package depresolve

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/target"
)

// Resolver resolves the direct dependencies declared by a single package.
// Implementations are free to apply whatever version-constraint matching
// their backing repository format calls for; Resolve returns the keys of
// the dependencies, not the constraints themselves.
type Resolver interface {
	Resolve(ctx context.Context, key pkgkey.Key, t target.Target) ([]pkgkey.Key, error)
}

// Closure walks the transitive dependency graph rooted at key and returns
// every reachable key exactly once, dependencies ordered before the
// packages that require them. Cycles are broken by a visited set: a key
// already on the current path is treated as satisfied rather than
// re-expanded, since a cycle in a package dependency graph can only mean
// the packages involved must already be reachable from one another.
//
// The root's direct dependencies are resolved concurrently via errgroup,
// since distinct sibling dependency lookups share no state; each of those
// subtrees is then walked sequentially.
func Closure(ctx context.Context, root pkgkey.Key, t target.Target, r Resolver) ([]pkgkey.Key, error) {
	visited := make(map[pkgkey.Key]bool)
	var order []pkgkey.Key

	var walk func(key pkgkey.Key, path map[pkgkey.Key]bool) error
	walk = func(key pkgkey.Key, path map[pkgkey.Key]bool) error {
		if visited[key] {
			return nil
		}
		if path[key] {
			return nil
		}
		path[key] = true

		deps, err := r.Resolve(ctx, key, t)
		if err != nil {
			return err
		}

		childResults := make([][]pkgkey.Key, len(deps))
		g, gctx := errgroup.WithContext(ctx)
		for i, dep := range deps {
			i, dep := i, dep
			g.Go(func() error {
				sub, err := resolveSubtree(gctx, dep, t, r, visited, path)
				if err != nil {
					return err
				}
				childResults[i] = sub
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for _, sub := range childResults {
			for _, k := range sub {
				if !visited[k] {
					visited[k] = true
					order = append(order, k)
				}
			}
		}

		delete(path, key)
		if !visited[key] {
			visited[key] = true
			order = append(order, key)
		}
		return nil
	}

	if err := walk(root, map[pkgkey.Key]bool{}); err != nil {
		return nil, err
	}
	return order, nil
}

// resolveSubtree recurses into a single dependency, returning its own
// transitive closure (dependencies-first) without mutating the shared
// visited set directly — the caller commits results after every sibling
// in a node's dependency list has finished, so that two siblings sharing
// a grandchild don't race on the visited map.
func resolveSubtree(ctx context.Context, key pkgkey.Key, t target.Target, r Resolver, visited map[pkgkey.Key]bool, path map[pkgkey.Key]bool) ([]pkgkey.Key, error) {
	if visited[key] || path[key] {
		return nil, nil
	}

	localPath := make(map[pkgkey.Key]bool, len(path)+1)
	for k := range path {
		localPath[k] = true
	}
	localPath[key] = true

	deps, err := r.Resolve(ctx, key, t)
	if err != nil {
		return nil, err
	}

	var out []pkgkey.Key
	seen := make(map[pkgkey.Key]bool)
	for _, dep := range deps {
		sub, err := resolveSubtree(ctx, dep, t, r, visited, localPath)
		if err != nil {
			return nil, err
		}
		for _, k := range sub {
			if !seen[k] && !visited[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	if !seen[key] && !visited[key] {
		out = append(out, key)
	}
	return out, nil
}
