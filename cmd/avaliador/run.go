package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
	"github.com/HugeFrog24/cefs-video-grader/internal/workflow"
)

var (
	fardamentoFlag string
	leituraFlag    int
)

var runCmd = &cobra.Command{
	Use:   "run <video>",
	Short: "Avalia um vídeo da pasta de vídeos",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fardamento, err := domain.ParseFardamento(fardamentoFlag)
		if err != nil {
			return err
		}
		if err := domain.ValidateObservations(fardamento, domain.Leitura(leituraFlag)); err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		video, err := a.videos.Get(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		out := cmd.OutOrStdout()
		orch, err := a.orchestrator(ctx, nil, progress{out: cmd.ErrOrStderr()})
		if err != nil {
			return err
		}

		rep, err := orch.Run(ctx, workflow.Input{
			Video:      video.Name,
			Fardamento: fardamento,
			Leitura:    domain.Leitura(leituraFlag),
		})
		if rep != nil {
			for _, w := range rep.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "Aviso: %s\n", w)
			}
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(out, rep.Result.Text)
		fmt.Fprintf(cmd.ErrOrStderr(), "Resultado salvo em %v\n", rep.ResultPaths)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&fardamentoFlag, "fardamento", "", "Adequado ou Inadequado")
	runCmd.Flags().IntVar(&leituraFlag, "leitura", 0, "Grau de leitura, de 0 (não leu) a 5 (só leu)")
	_ = runCmd.MarkFlagRequired("fardamento")
	_ = runCmd.MarkFlagRequired("leitura")
}
