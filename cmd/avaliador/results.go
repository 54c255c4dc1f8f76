package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/HugeFrog24/cefs-video-grader/internal/report"
)

var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "Lista os vídeos disponíveis",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		videos, err := a.videos.List()
		if err != nil {
			return err
		}
		if len(videos) == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Nenhum vídeo encontrado em %s\n", a.layout.Videos)
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, v := range videos {
			fmt.Fprintf(w, "%s\t%s\t%.1f MB\n", v.Name, v.ModTime.Format("2006-01-02 15:04"), float64(v.Size)/(1<<20))
		}
		return w.Flush()
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Lista avaliações anteriores, mais recentes primeiro",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		history, err := a.results.List()
		if err != nil {
			return err
		}
		if len(history) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "Nenhuma avaliação salva.")
			return nil
		}
		for _, h := range history {
			fmt.Fprintln(cmd.OutOrStdout(), h)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Mostra uma avaliação salva",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		text, err := a.results.Load(args[0])
		if err != nil {
			return err
		}

		sections := report.ParseSections(text)
		if sections == nil {
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}
		for _, s := range sections {
			fmt.Fprintf(cmd.OutOrStdout(), "== %s ==\n%s\n\n", s.Title, s.Text)
		}
		return nil
	},
}

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Exporta uma avaliação salva como .docx",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		text, err := a.results.Load(args[0])
		if err != nil {
			return err
		}
		out := exportOut
		if out == "" {
			out = args[0] + ".docx"
		}
		if err := report.WriteDocx(args[0], text, out); err != nil {
			return fmt.Errorf("export %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exportado para %s\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default <name>.docx)")
}
