package repodata

// schema constrains a repository document before it is decoded into Go
// types, the same role cue-defined resource schemas play for the
// ambient configuration stack: malformed repository data is rejected at
// the CUE layer, with a CUE-native error, rather than surfacing as a
// confusing decode panic deep inside the planner.
const schema = `
#Version: {
	version:       string
	dependencies?: [string]: string
}

#Package: {
	id:       string
	versions: [#Version, ...#Version]
}

repositoryUrl: string
packages: [string]: #Package
`
