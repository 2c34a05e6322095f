package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/thiagokokada/gitbranches-go/internal/buildinfo"
	"github.com/thiagokokada/gitbranches-go/internal/git"
	"github.com/thiagokokada/gitbranches-go/internal/gui"
	"github.com/thiagokokada/gitbranches-go/internal/tree"
)

func Run() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	fs := flag.NewFlagSet("gitbranches-go", flag.ContinueOnError)
	printTree := fs.Bool("print", false, "print the remote branches tree to stdout and exit")
	listBranches := fs.Bool("branches", false, "print the fully qualified branch paths to stdout and exit")
	mode := fs.String("mode", gui.ThemeAuto.String(), "color mode: auto, light, or dark")
	noWatch := fs.Bool("nowatch", false, "disable automatic reload when repository changes")
	verbose := fs.Bool("verbose", false, "enable verbose logging")
	showVersion := fs.Bool("version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if *showVersion {
		fmt.Println(buildinfo.VersionWithTags())
		return nil
	}
	repoPath := "."
	remaining := fs.Args()
	if len(remaining) > 0 {
		repoPath = remaining[len(remaining)-1]
	}
	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *printTree || *listBranches {
		return printBranches(repoPath, *printTree, *listBranches)
	}
	return gui.Run(gui.RunConfig{
		RepoPath:        repoPath,
		ThemePreference: gui.ThemePreferenceFromString(*mode),
		AutoReload:      !*noWatch,
		Verbose:         *verbose,
	})
}

func printBranches(repoPath string, renderTree, listPaths bool) error {
	svc, err := git.Open(repoPath)
	if err != nil {
		return err
	}
	refs, err := svc.ListReferences()
	if err != nil {
		return err
	}
	remotes, err := svc.ListRemotes()
	if err != nil {
		return err
	}
	forest, err := tree.Build(context.Background(), tree.FilterRefs(refs, remotes), remotes)
	if err != nil {
		return err
	}
	if renderTree {
		fmt.Print(forest.Render())
	}
	if listPaths {
		for _, path := range forest.BranchPaths() {
			fmt.Println(path)
		}
	}
	return nil
}
