package main

import (
	"fmt"
	"os"

	"github.com/pablotanner/RocketRealtor/internal/report"
	"github.com/pablotanner/RocketRealtor/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func exportCmd() *cobra.Command {
	var (
		realtorID uint
		out       string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a realtor's portfolio to an XLSX file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if realtorID == 0 {
				return fmt.Errorf("--realtor is required")
			}
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.close()

			properties := service.NewPropertyService(a.repos.Properties, service.Support{Logger: a.logger})
			resp, err := properties.PortfolioSummary(cmd.Context(), service.PortfolioSummaryRequest{RealtorID: realtorID})
			if err != nil {
				return err
			}
			data, err := report.PortfolioWorkbook(resp.Portfolio)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			a.logger.Info("portfolio exported",
				zap.Uint("realtor_id", realtorID),
				zap.Int("properties", len(resp.Portfolio.Rows)),
				zap.String("path", out),
			)
			return nil
		},
	}

	cmd.Flags().UintVar(&realtorID, "realtor", 0, "realtor user id")
	cmd.Flags().StringVar(&out, "out", "portfolio.xlsx", "output file")
	return cmd
}
