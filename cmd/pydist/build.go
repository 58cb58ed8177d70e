// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pydist-cli/internal/hooks"
	"pydist-cli/internal/issue"
	"pydist-cli/pkg/distfile"
	"pydist-cli/pkg/pyversion"
	"pydist-cli/pkg/sdist"

	"github.com/spf13/cobra"
)

var (
	// buildOutput overrides the dist output directory
	buildOutput string
	// buildKeepBuild leaves the build/ staging area in place
	buildKeepBuild bool
	// buildPython overrides the Python interpreter
	buildPython string

	// buildCmd runs the packaging pipeline
	buildCmd = &cobra.Command{
		Use:   "build [distributor]",
		Short: "Build the source distribution tarball",
		Long: `Build the source distribution tarball for the package described by
the distfile.cue in the current directory.

The pipeline resolves the package version (importing the module with
the Python interpreter, falling back to a static scan and to
pyproject.toml), stages matching files into build/<product>-<version>/
and archives the staged tree to dist/<product>-<version>.tar.gz.

The optional positional argument is a distributor prefix prepended to
the archive name:

  pydist build           -> dist/txsuds-1.2.3.tar.gz
  pydist build acme      -> dist/acme-txsuds-1.2.3.tar.gz`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBuild,
	}
)

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory for the archive (default: dist/)")
	buildCmd.Flags().BoolVar(&buildKeepBuild, "keep-build", false, "keep the build/ staging directory after archiving")
	buildCmd.Flags().StringVar(&buildPython, "python", "", "python interpreter for the version probe")
}

func runBuild(cmd *cobra.Command, args []string) error {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}
	if err := sdist.ValidatePrefix(prefix); err != nil {
		return err
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	df, err := loadProject(root)
	if err != nil {
		return err
	}

	version, source, err := resolveVersion(cmd, root, df)
	if err != nil {
		return err
	}

	fmt.Println(sectionTitleStyle.Render("Build Source Distribution"))
	fmt.Printf("%s Product: %s\n", infoIcon, CmdStyle.Render(df.Product))
	fmt.Printf("%s Version: %s %s\n", infoIcon, CmdStyle.Render(version), VerboseStyle.Render("("+string(source)+")"))

	logger.Debug("resolved project",
		"package", df.Package,
		"product", df.Product,
		"version", version,
		"source", source)

	opts := sdist.BuildOptions{
		Root:    root,
		Product: df.Product,
		Version: version,
		Prefix:  prefix,
		Collect: sdist.CollectOptions{
			Extensions: df.Extensions,
			Aux:        df.Aux,
			Exclude:    df.Exclude,
		},
		DistDir:   resolveDistDir(root),
		KeepBuild: buildKeepBuild,
	}

	if df.HasHooks() {
		// STAGING_DIR is exported to every hook, not just pre_build;
		// the staging tree still exists when post_build runs.
		stagingDir := filepath.Join(root, sdist.BuildDirName, sdist.DirName(df.Product, version))
		runner := &hooks.Runner{
			Dir: root,
			Env: map[string]string{
				"PRODUCT":     df.Product,
				"VERSION":     version,
				"STAGING_DIR": stagingDir,
			},
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		}
		if df.Hooks.PreBuild != "" {
			pre := df.Hooks.PreBuild
			opts.PreArchive = func(stagingDir string) error {
				runner.Env["STAGING_DIR"] = stagingDir
				logger.Debug("running pre-build hook")
				return runner.Run(cmd.Context(), "pre_build", pre)
			}
		}
		if df.Hooks.PostBuild != "" {
			post := df.Hooks.PostBuild
			opts.PostArchive = func(archivePath string) error {
				runner.Env["ARCHIVE"] = archivePath
				logger.Debug("running post-build hook")
				return runner.Run(cmd.Context(), "post_build", post)
			}
		}
	}

	result, err := opts.Build()
	if err != nil {
		renderKnownIssue(err)
		return err
	}

	if result.FileCount == 0 {
		// An empty match set still archives; only verbose mode says so.
		logger.Debug("no files matched the extension filter or aux allowlist")
		if verbose {
			renderIssue(issue.NoFilesMatchedId)
		}
	}

	fmt.Println()
	fmt.Printf("%s Archive written\n", successIcon)
	fmt.Println()
	fmt.Printf("%s Output: %s\n", infoIcon, PathStyle.Render(result.ArchivePath))
	fmt.Printf("%s Files: %d\n", infoIcon, result.FileCount)
	fmt.Printf("%s Size: %s\n", infoIcon, formatFileSize(result.ArchiveSize))
	if result.StagingDir != "" {
		fmt.Printf("%s Staging kept at: %s\n", infoIcon, PathStyle.Render(result.StagingDir))
	}

	return nil
}

// loadProject locates and parses the distfile for root, rendering the
// matching troubleshooting entry on failure.
func loadProject(root string) (*distfile.Distfile, error) {
	path, err := distfile.Find(root)
	if err != nil {
		renderIssue(issue.DistfileNotFoundId)
		return nil, issue.NewErrorContext().
			WithOperation("locate distfile").
			WithResource(root).
			WithSuggestion("Run 'pydist init <package>' to create one").
			Wrap(err).
			BuildError()
	}

	df, err := distfile.Parse(path)
	if err != nil {
		renderIssue(issue.DistfileParseErrorId)
		return nil, issue.NewErrorContext().
			WithOperation("parse distfile").
			WithResource(path).
			WithSuggestion("Check the reported field against the distfile schema").
			Wrap(err).
			BuildError()
	}

	return df, nil
}

// resolveVersion returns the version for the build: the distfile pin
// when present, otherwise the pyversion resolution chain.
func resolveVersion(cmd *cobra.Command, root string, df *distfile.Distfile) (string, pyversion.Source, error) {
	if df.Version != "" {
		if err := pyversion.Validate(df.Version); err != nil {
			return "", "", issue.NewErrorContext().
				WithOperation("validate pinned version").
				WithResource(df.FilePath).
				Wrap(err).
				BuildError()
		}
		return df.Version, pyversion.SourcePinned, nil
	}

	resolver := &pyversion.Resolver{Interpreter: interpreterFor()}
	res, err := resolver.Resolve(cmd.Context(), root, df.Package)
	if err != nil {
		switch {
		case errors.Is(err, pyversion.ErrInterpreterNotFound):
			renderIssue(issue.InterpreterNotFoundId)
		case errors.Is(err, pyversion.ErrVersionNotFound):
			renderIssue(issue.VersionNotFoundId)
		}
		return "", "", issue.NewErrorContext().
			WithOperation("resolve version").
			WithResource(df.Package).
			WithSuggestion("Pin a version in distfile.cue to skip resolution").
			Wrap(err).
			BuildError()
	}

	return res.Version, res.Source, nil
}

// interpreterFor returns the Python executable for version probes:
// --python flag first, then the global config, then the default.
func interpreterFor() string {
	if buildPython != "" {
		return buildPython
	}
	if loadedConfig != nil && loadedConfig.Interpreter != "" {
		return loadedConfig.Interpreter
	}
	return pyversion.DefaultInterpreter
}

// resolveDistDir returns the archive output directory: --output flag
// first, then the configured dist dir resolved against root.
func resolveDistDir(root string) string {
	if buildOutput != "" {
		return buildOutput
	}
	dir := sdist.DistDirName
	if loadedConfig != nil && loadedConfig.DistDir != "" {
		dir = loadedConfig.DistDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return dir
}

// renderKnownIssue maps a build error to a troubleshooting entry and
// renders it, if one applies.
func renderKnownIssue(err error) {
	if err == nil {
		return
	}
	msg := err.Error()
	switch {
	case errors.Is(err, pyversion.ErrInterpreterNotFound):
		renderIssue(issue.InterpreterNotFoundId)
	case errors.Is(err, pyversion.ErrVersionNotFound):
		renderIssue(issue.VersionNotFoundId)
	case strings.Contains(msg, "hook failed"):
		renderIssue(issue.HookFailedId)
	}
}

// formatFileSize formats a file size in bytes to a human-readable string.
func formatFileSize(size int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case size >= gb:
		return fmt.Sprintf("%.2f GB", float64(size)/float64(gb))
	case size >= mb:
		return fmt.Sprintf("%.2f MB", float64(size)/float64(mb))
	case size >= kb:
		return fmt.Sprintf("%.2f KB", float64(size)/float64(kb))
	default:
		return fmt.Sprintf("%d bytes", size)
	}
}
