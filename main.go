package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dawaman43/blog-site-frontend/infra/auth"
	"github.com/Dawaman43/blog-site-frontend/infra/blogapi"
	"github.com/Dawaman43/blog-site-frontend/infra/config"
	"github.com/Dawaman43/blog-site-frontend/infra/editor"
	"github.com/Dawaman43/blog-site-frontend/infra/store"
	"github.com/Dawaman43/blog-site-frontend/tui"
	"github.com/Dawaman43/blog-site-frontend/tui/common"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: blogsite [--version|-version|-v] [--help|-h]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("BlogSite %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
	}

	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// 2. Build infrastructure. The local store also decides whether we start
	// logged in: requests go out unauthenticated when no token is saved.
	fileStore, err := store.Open(cfg.StatePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "state: %v\n", err)
		os.Exit(1)
	}
	tokenProvider := auth.NewStoreTokenProvider(fileStore)
	client := blogapi.NewClient(cfg.APIBaseURL, tokenProvider)

	// 3. Build services (concrete types satisfy app.* interfaces).
	blogSvc := blogapi.NewBlogService(client)
	commentSvc := blogapi.NewCommentService(client)
	categorySvc := blogapi.NewCategoryService(client)
	accountSvc := blogapi.NewAccountService(client)
	editorSvc := editor.NewEnvEditor()

	common.SetTheme(fileStore.Theme())

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Blogs:      blogSvc,
		Comments:   commentSvc,
		Categories: categorySvc,
		Account:    accountSvc,
		Store:      fileStore,
		Editor:     editorSvc,
	})

	// 5. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "blogsite: %v\n", err)
		os.Exit(1)
	}
}
