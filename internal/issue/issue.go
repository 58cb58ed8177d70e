// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a well-known failure mode in the catalog.
type Id int

const (
	InterpreterNotFoundId Id = iota + 1
	VersionNotFoundId
	DistfileNotFoundId
	DistfileParseErrorId
	NoFilesMatchedId
	HookFailedId
)

// MarkdownMsg is the markdown help text rendered for an issue.
type MarkdownMsg string

// Issue pairs a failure mode with its rendered troubleshooting text.
type Issue struct {
	id    Id
	mdMsg MarkdownMsg
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue's markdown with the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

// render is a seam for tests to stub out glamour.
var render = glamour.Render

var (
	interpreterNotFoundIssue = &Issue{
		id: InterpreterNotFoundId,
		mdMsg: `
# Python interpreter not found

pydist imports the target package to read its version attribute, which
needs a working Python executable.

## Things you can try
- Install Python 3 and make sure it is on your PATH
- Point pydist at an explicit interpreter:
~~~
$ pydist build --python /usr/local/bin/python3.12
~~~
- Or set it once in the global config:
~~~
interpreter: "/usr/local/bin/python3.12"
~~~`,
	}

	versionNotFoundIssue = &Issue{
		id: VersionNotFoundId,
		mdMsg: `
# Could not resolve the package version

Every strategy came up empty: importing the package, scanning its
__init__.py, and reading pyproject.toml.

## Things you can try
- Check that the package defines a version attribute:
~~~
__version__ = "1.2.3"
~~~
- Or pin the version in distfile.cue:
~~~
version: "1.2.3"
~~~`,
	}

	distfileNotFoundIssue = &Issue{
		id: DistfileNotFoundId,
		mdMsg: `
# No distfile found

pydist expects a distfile.cue at the root of the working tree.

## Things you can try
- Scaffold one:
~~~
$ pydist init mypackage
~~~`,
	}

	distfileParseErrorIssue = &Issue{
		id: DistfileParseErrorId,
		mdMsg: `
# The distfile could not be parsed

distfile.cue exists but does not validate against the schema.

## Things you can try
- Check the reported path and message against the field list in
  'pydist init --help'
- Regenerate a known-good file with 'pydist init --force'`,
	}

	noFilesMatchedIssue = &Issue{
		id: NoFilesMatchedId,
		mdMsg: `
# No files matched

The extension filter and auxiliary allowlist selected nothing, so the
archive contains only the empty top-level directory.

## Things you can try
- Run 'pydist files' to see what the filters resolve to
- Widen 'extensions' or 'aux' in distfile.cue`,
	}

	hookFailedIssue = &Issue{
		id: HookFailedId,
		mdMsg: `
# A build hook failed

Hooks run in the embedded POSIX shell with PRODUCT, VERSION and
STAGING_DIR exported. A non-zero exit aborts the build.

## Things you can try
- Run 'pydist build --verbose' to see the hook's output
- Test the snippet in a regular shell with the same variables set`,
	}

	issuesById = map[Id]*Issue{
		InterpreterNotFoundId: interpreterNotFoundIssue,
		VersionNotFoundId:     versionNotFoundIssue,
		DistfileNotFoundId:    distfileNotFoundIssue,
		DistfileParseErrorId:  distfileParseErrorIssue,
		NoFilesMatchedId:      noFilesMatchedIssue,
		HookFailedId:          hookFailedIssue,
	}
)

// Lookup returns the catalog issue for the given id, or nil when the
// id is unknown.
func Lookup(id Id) *Issue {
	return issuesById[id]
}

// Ids returns all catalog ids in ascending order.
func Ids() []Id {
	ids := maps.Keys(issuesById)
	slices.Sort(ids)
	return ids
}
