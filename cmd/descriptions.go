package cmd

const rootLongDescription = `Doclint checks that source files, interfaces, functions, API routes,
class methods, tests and environment configuration entries carry the
structured documentation comments your team's standard prescribes.

It scans a source tree, associates each declaration with the comment
block directly above it, validates the block against a per-construct
rule table, and reports violations deterministically.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./api ./lib    scan multiple directories
  - server.ts      check a single file

Exit codes: 0 when clean, 1 when fail-on violations are found, 2 on
configuration errors.`

const checkLongDescription = `Check documentation compliance for the given paths.

Each discovered declaration is matched against the rule table for its
construct kind. Missing comment blocks, missing or empty required tags,
tag values of the wrong shape, and stale TODOs are reported as
violations. The report is deterministic: re-running against unchanged
inputs yields identical output regardless of --workers.`

const listLongDescription = `List source files with the number of declarations found in each and
how many of them carry a documentation block. Useful for sizing a
cleanup before enforcing the standard in CI.`

const rulesLongDescription = `Print the effective rule table: for every construct kind, the required
tags with their value predicates and the tolerated optional tags.
Defaults to the embedded table; --rules shows an external one.`
