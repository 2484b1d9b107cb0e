// Package topics extends a cobra application's help system with
// file-backed help topics, so `help <topic>` works alongside
// `help <command>`. Topics are read from an fs.FS, which lets the CLI
// embed its documentation into the binary.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/prettysitter/pkg/errors"
)

// Topic is one help topic, named after its file without the extension.
type Topic struct {
	Name    string
	Format  string
	Content string
}

// Manager holds the loaded topics and the help function it wraps.
type Manager struct {
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	renderer     Renderer
}

// Options configures topic loading.
type Options struct {
	// Extensions lists the file extensions treated as topics. Defaults to
	// ".md" and ".txt".
	Extensions []string

	// Renderer formats topic content for the terminal. Defaults to
	// PlainRenderer.
	Renderer Renderer
}

// Load reads every topic file from the filesystem.
func Load(files fs.FS, opts Options) (*Manager, error) {
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{".md", ".txt"}
	}
	if opts.Renderer == nil {
		opts.Renderer = &PlainRenderer{}
	}

	m := &Manager{
		topics:   make(map[string]*Topic),
		renderer: opts.Renderer,
	}

	err := fs.WalkDir(files, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		supported := false
		for _, e := range opts.Extensions {
			if ext == e {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		content, err := fs.ReadFile(files, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Format: ext, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load help topics")
	}
	return m, nil
}

// Get retrieves a topic by name. Leading dashes are stripped so
// "--width" resolves the "width" topic.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	t, ok := m.topics[name]
	return t, ok
}

// Names returns the topic names sorted alphabetically.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic for terminal display.
func (m *Manager) Render(t *Topic) string {
	return m.renderer.Render(t.Content, t.Format)
}

// Install wires the manager into the root command: it replaces the help
// command with one that also resolves topics, and teaches the --help
// path about them.
func (m *Manager) Install(rootCmd *cobra.Command) {
	m.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootCmd.Name() + ` help [command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				m.originalHelp(rootCmd, []string{})
				return
			}

			if args[0] == "topics" {
				m.printIndex(rootCmd.Name())
				return
			}

			if t, ok := m.Get(args[0]); ok {
				fmt.Print(m.Render(t))
				return
			}
			m.originalHelp(rootCmd, args)
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if t, ok := m.Get(args[0]); ok {
				fmt.Print(m.Render(t))
				return
			}
		}
		m.originalHelp(cmd, args)
	})
}

func (m *Manager) printIndex(appName string) {
	names := m.Names()
	if len(names) == 0 {
		fmt.Println("No help topics available.")
		return
	}
	fmt.Println("Available help topics:")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	fmt.Printf("\nUse '%s help <topic>' to read about a specific topic.\n", appName)
}

// Initialize loads topics from the filesystem and installs them on the
// root command.
func Initialize(rootCmd *cobra.Command, files fs.FS, opts Options) error {
	m, err := Load(files, opts)
	if err != nil {
		return err
	}
	m.Install(rootCmd)
	return nil
}
