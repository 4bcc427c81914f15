// Package requirements implements parsing, matching, editing, and sorting of
// requirements.txt lines.
//
// # Line model
//
// A requirements file is a list of UTF-8 lines. Blank lines separate logical
// sections, lines whose first non-whitespace character is '#' are standalone
// comments, and any other line is an entry that may carry a trailing inline
// comment. Entries come in three kinds:
//
//   - Plain packages: requests, django>=4.0, requests[security]==2.28.0
//   - Local paths: ./packages/mylib, ../shared
//   - URL/VCS references: git+https://github.com/user/repo.git#egg=mylib,
//     mylib @ https://example.com/mylib.whl
//
// [Extract] classifies a line into an [Identity] once, and [Matches] applies
// kind-specific matching rules against a user-supplied package name. Names
// are compared case-insensitively with hyphens and underscores treated as
// equivalent, following PEP 503 normalization.
//
// # Editing
//
// [Add], [Remove], [Update], and [Find] operate on a line list and return the
// modified list without touching the filesystem. Editing functions re-sort
// their output through [Sort].
//
// # Sorting
//
// [Sort] supports two modes. [ModeSections] preserves blank-line sections and
// standalone comments, sorting entries within each section. [ModeLegacy]
// drops standalone comments, sorts plain entries, and appends local-path and
// editable references at the end in their original order. Both modes order
// entries by [SortKey] using a caller-supplied comparator, typically from the
// collation package.
//
// Sorting is a pure function of its inputs and is idempotent: sorting already
// sorted lines returns them unchanged.
package requirements
