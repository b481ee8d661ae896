package cli

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/filesystem"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/storage"
)

type storageFlags struct {
	user  string
	title string
	dir   string
	afero bool
}

func (f *storageFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.user, "user", "", "user storage as org/app")
	cmd.Flags().StringVar(&f.title, "title", "", "title storage rooted at this override path")
	cmd.Flags().StringVar(&f.dir, "dir", "", "file storage rooted at a local directory")
	cmd.Flags().BoolVar(&f.afero, "afero", false, "serve --dir through the Go storage interface instead of the native one")
	cmd.MarkFlagsMutuallyExclusive("user", "title", "dir")
}

func (f *storageFlags) open(ctx context.Context) (*storage.Storage, error) {
	var (
		st  *storage.Storage
		err error
	)
	switch {
	case f.user != "":
		org, app, ok := strings.Cut(f.user, "/")
		if !ok {
			org, app = "", f.user
		}
		st, err = storage.OpenUser(org, app, 0)
	case f.title != "":
		st, err = storage.OpenTitle(f.title, 0)
	case f.dir != "" && f.afero:
		st, err = storage.OpenFS(afero.NewBasePathFs(afero.NewOsFs(), f.dir))
	case f.dir != "":
		st, err = storage.OpenFile(f.dir)
	default:
		return nil, fmt.Errorf("one of --user, --title or --dir is required")
	}
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := st.WaitReady(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("storage not ready: %w", err)
	}
	return st, nil
}

func newStorageCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Browse SDL storage containers",
	}
	cmd.AddCommand(newStorageLsCommand(a), newStorageCatCommand(a))
	return cmd
}

func newStorageLsCommand(a *app) *cobra.Command {
	var sf storageFlags
	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List a storage directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lib, err := a.open(ctx, 0)
			if err != nil {
				return err
			}
			defer a.close(ctx, lib)

			st, err := sf.open(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return listStorage(cmd.OutOrStdout(), st, dir)
		},
	}
	sf.register(cmd)
	return cmd
}

func listStorage(w io.Writer, st *storage.Storage, dir string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tSIZE\tMODIFIED\tNAME")
	err := st.Enumerate(dir, func(_, name string) error {
		info, err := st.PathInfo(path.Join(dir, name))
		if err != nil {
			return err
		}
		modified := "-"
		if !info.ModifyTime.IsZero() {
			modified = info.ModifyTime.Format(time.DateTime)
		}
		size := "-"
		if info.Type == filesystem.PathFile {
			size = fmt.Sprint(info.Size)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Type, size, modified, name)
		return nil
	})
	if err != nil {
		return err
	}
	return tw.Flush()
}

func newStorageCatCommand(a *app) *cobra.Command {
	var sf storageFlags
	cmd := &cobra.Command{
		Use:   "cat <path>",
		Short: "Print a file from a storage container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lib, err := a.open(ctx, 0)
			if err != nil {
				return err
			}
			defer a.close(ctx, lib)

			st, err := sf.open(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			data, err := st.ReadFile(args[0])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	sf.register(cmd)
	return cmd
}
