package main

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/dhamidi/introspect/element"
	"github.com/dhamidi/introspect/format"
	"github.com/dhamidi/introspect/query"
)

type membersFlags struct {
	kind              string
	declared          bool
	static            bool
	instance          bool
	includeHidden     bool
	includeOverridden bool
	named             string
	annotated         []string
	format            string
}

func newMembersCmd(flags *globalFlags) *cobra.Command {
	var mf membersFlags

	cmd := &cobra.Command{
		Use:   "members <class>",
		Short: "List the members of a class, inherited ones included",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := mf.query()
			if err != nil {
				return err
			}
			cb, _, err := openCodebase(flags)
			if err != nil {
				return err
			}
			members, err := cb.Members(args[0], q)
			if err != nil {
				return err
			}
			enc, err := format.NewEncoder(mf.format, os.Stdout)
			if err != nil {
				return err
			}
			return enc.EncodeElements(members)
		},
	}

	cmd.Flags().StringVarP(&mf.kind, "kind", "k", "member", "element kind (type, method, constructor, field, property, member)")
	cmd.Flags().BoolVar(&mf.declared, "declared", false, "only members declared by the class itself")
	cmd.Flags().BoolVar(&mf.static, "static", false, "only static members")
	cmd.Flags().BoolVar(&mf.instance, "instance", false, "only instance members")
	cmd.Flags().BoolVar(&mf.includeHidden, "include-hidden", false, "keep hidden fields and static methods")
	cmd.Flags().BoolVar(&mf.includeOverridden, "include-overridden", false, "keep overridden methods")
	cmd.Flags().StringVar(&mf.named, "named", "", "name glob, e.g. get*")
	cmd.Flags().StringSliceVar(&mf.annotated, "annotated", nil, "required annotation type (repeatable)")
	cmd.Flags().StringVarP(&mf.format, "format", "f", "line", "output format (line, json)")

	return cmd
}

func (mf *membersFlags) query() (query.Query, error) {
	kind, ok := element.ParseKind(mf.kind)
	if !ok {
		return query.Query{}, fmt.Errorf("unknown kind %q", mf.kind)
	}
	if mf.static && mf.instance {
		return query.Query{}, fmt.Errorf("--static and --instance are mutually exclusive")
	}
	q := query.Of(kind)
	if mf.declared {
		q = q.OnlyDeclared()
	}
	if mf.static {
		q = q.OnlyStatic()
	}
	if mf.instance {
		q = q.OnlyInstance()
	}
	if mf.includeHidden {
		q = q.IncludeHidden()
	}
	if mf.includeOverridden {
		q = q.IncludeOverridden()
	}
	if mf.named != "" {
		if _, err := path.Match(mf.named, ""); err != nil {
			return query.Query{}, fmt.Errorf("bad --named pattern: %w", err)
		}
		pattern := mf.named
		q = q.Named(func(name string) bool {
			ok, _ := path.Match(pattern, name)
			return ok
		})
	}
	for _, a := range mf.annotated {
		q = q.AnnotatedWith(a)
	}
	return q, nil
}
