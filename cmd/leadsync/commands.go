package main

import (
	"github.com/spf13/cobra"

	"github.com/jcanalytics/leadsync-go/pkg/leadsync"
)

func newDistributeCmd() *cobra.Command {
	var (
		level      int
		assign     []string
		assignFile string
	)
	cmd := &cobra.Command{
		Use:   "distribute",
		Short: "Assign master rows to people and append them to their tracking files",
		Example: `  leadsync distribute --level 1 --assign Ana=0,2 --assign Bob=1
  leadsync distribute --level 2 --assign-file assignments.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, err := parseAssignments(assign)
			if err != nil {
				return fail(cmd, err)
			}
			if assignFile != "" {
				fromFile, err := loadAssignments(assignFile)
				if err != nil {
					return fail(cmd, err)
				}
				mergeAssignments(assignments, fromFile)
			}
			res, err := newEngine().Distribute(assignments, level)
			return respond(cmd, res, err)
		},
	}
	cmd.Flags().IntVar(&level, "level", 1, "Pipeline level: 1 (Analyst) or 2 (Coordinator)")
	cmd.Flags().StringArrayVar(&assign, "assign", nil, "Assignment as Person=row,row (zero-based master rows); repeatable")
	cmd.Flags().StringVar(&assignFile, "assign-file", "", "YAML file mapping person to a list of master rows")
	return cmd
}

func newSyncCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile tracking files into the master",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := leadsync.ParseSyncMode(mode)
			if err != nil {
				return fail(cmd, err)
			}
			res, err := newEngine().Sync(m)
			return respond(cmd, res, err)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(leadsync.ModeUpdate), "Sync mode: update or release")
	return cmd
}

func newPromoteCmd() *cobra.Command {
	var (
		coordinator string
		ids         []string
	)
	cmd := &cobra.Command{
		Use:     "promote",
		Short:   "Promote leads to a level-2 coordinator",
		Example: `  leadsync promote --coordinator Luis --id 12 --id 13`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newEngine().Promote(ids, coordinator)
			return respond(cmd, res, err)
		},
	}
	cmd.Flags().StringVar(&coordinator, "coordinator", "", "Coordinator receiving the leads")
	cmd.Flags().StringSliceVar(&ids, "id", nil, "Lead ID to promote; repeatable or comma separated")
	return cmd
}

func newIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest",
		Short: "Merge raw data batches into the master and archive them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newEngine().ProcessRawData()
			return respond(cmd, res, err)
		},
	}
}

func newStructureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "structure",
		Short: "List the files of every data folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newEngine().Structure()
			return respond(cmd, res, err)
		},
	}
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print workbook contents",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "main",
			Short: "Print the master workbook",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				res, err := newEngine().Master()
				return respond(cmd, res, err)
			},
		},
		&cobra.Command{
			Use:   "tracking [person]",
			Short: "Print the latest tracking workbook of a person",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				res, err := newEngine().Tracking(args[0])
				return respond(cmd, res, err)
			},
		},
		&cobra.Command{
			Use:   "tracking-all",
			Short: "Print the latest tracking workbook of every person",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				res, err := newEngine().TrackingAll()
				return respond(cmd, res, err)
			},
		},
	)
	return cmd
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List the historical archive, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newEngine().History()
			return respond(cmd, res, err)
		},
	}
}
