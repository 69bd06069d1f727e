package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/escolar-hub/escolar-console/internal/domain/school"
)

func newProgramsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "programs", Short: "Browse study programs"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all study programs",
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp()
				if err != nil {
					return err
				}
				if err := a.programs.FetchAll(cmd.Context()); err != nil {
					return err
				}
				w := newTable(cmd)
				fmt.Fprintln(w, "ID\tNAME\tSEMESTERS")
				for _, p := range a.programs.Items() {
					fmt.Fprintf(w, "%s\t%s\t%d\n", p.ID, p.Name, p.SemesterCount)
				}
				return w.Flush()
			},
		},
		newCountCmd("study programs", func(a *app) counter { return a.programs }),
	)
	return cmd
}

func newSubjectsCmd() *cobra.Command {
	var programID string
	var semester int

	list := &cobra.Command{
		Use:   "list",
		Short: "List subjects, optionally filtered by program and/or semester",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var subjects []school.Subject
			switch {
			case programID != "" && semester > 0:
				subjects, err = a.subjects.ByProgramAndSemester(ctx, programID, semester)
			case programID != "":
				subjects, err = a.subjects.ByProgram(ctx, programID)
			case semester > 0:
				subjects, err = a.subjects.BySemester(ctx, semester)
			default:
				if err = a.subjects.FetchAll(ctx); err == nil {
					subjects = a.subjects.Items()
				}
			}
			if err != nil {
				return err
			}
			w := newTable(cmd)
			fmt.Fprintln(w, "ID\tNAME\tSEMESTER\tPROGRAM")
			for _, s := range subjects {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.ID, s.Name, s.Semester, s.StudyProgramID)
			}
			return w.Flush()
		},
	}
	list.Flags().StringVar(&programID, "program", "", "filter by study program id")
	list.Flags().IntVar(&semester, "semester", 0, "filter by semester")

	cmd := &cobra.Command{Use: "subjects", Short: "Browse subjects"}
	cmd.AddCommand(list, newCountCmd("subjects", func(a *app) counter { return a.subjects }))
	return cmd
}

func newTeachersCmd() *cobra.Command {
	var subjectID string

	list := &cobra.Command{
		Use:   "list",
		Short: "List teachers, optionally only those competent in a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var teachers []school.Teacher
			if subjectID != "" {
				teachers, err = a.teachers.CompetentFor(ctx, subjectID)
			} else if err = a.teachers.FetchAll(ctx); err == nil {
				teachers = a.teachers.Items()
			}
			if err != nil {
				return err
			}
			w := newTable(cmd)
			fmt.Fprintln(w, "ID\tNAME\tCOMPETENCIES")
			for _, t := range teachers {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Name, strings.Join(t.CompetencySubjectIDs, ","))
			}
			return w.Flush()
		},
	}
	list.Flags().StringVar(&subjectID, "subject", "", "only teachers competent in this subject id")

	cmd := &cobra.Command{Use: "teachers", Short: "Browse teachers"}
	cmd.AddCommand(list, newCountCmd("teachers", func(a *app) counter { return a.teachers }))
	return cmd
}

func newStudentsCmd() *cobra.Command {
	var semester int

	list := &cobra.Command{
		Use:   "list",
		Short: "List students, optionally filtered by current semester",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var students []school.Student
			if semester > 0 {
				students, err = a.students.BySemester(ctx, semester)
			} else if err = a.students.FetchAll(ctx); err == nil {
				students = a.students.Items()
			}
			if err != nil {
				return err
			}
			w := newTable(cmd)
			fmt.Fprintln(w, "ID\tNAME\tENROLLMENT\tSEMESTER")
			for _, s := range students {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", s.ID, s.Name, s.Enrollment, s.CurrentSemester)
			}
			return w.Flush()
		},
	}
	list.Flags().IntVar(&semester, "semester", 0, "filter by current semester")

	cmd := &cobra.Command{Use: "students", Short: "Browse students"}
	cmd.AddCommand(list, newCountCmd("students", func(a *app) counter { return a.students }))
	return cmd
}

func newGroupsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "groups", Short: "Browse groups"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all groups",
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp()
				if err != nil {
					return err
				}
				if err := a.groups.FetchAll(cmd.Context()); err != nil {
					return err
				}
				w := newTable(cmd)
				fmt.Fprintln(w, "ID\tNAME\tSUBJECT\tTEACHER\tSTUDENTS")
				for _, g := range a.groups.Items() {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
						g.ID, g.Name, g.SubjectNameSnapshot, g.TeacherNameSnapshot, len(g.StudentIDs))
				}
				return w.Flush()
			},
		},
		newCountCmd("groups", func(a *app) counter { return a.groups }),
	)
	return cmd
}

type counter interface {
	Count(ctx context.Context) int
}

func newCountCmd(what string, pick func(*app) counter) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Show the total number of " + what,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", pick(a).Count(cmd.Context()), what)
			return nil
		},
	}
}

func newTable(cmd *cobra.Command) *tabwriter.Writer {
	return tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
}
