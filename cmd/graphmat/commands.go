// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphmat/config"
	"github.com/katalvlaran/graphmat/matroid"
)

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Summarise the loaded model",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.timed("info", func() error {
				m := a.model
				a.pr.model(m)
				a.pr.kv("vertices", len(m.Vertices()))
				a.pr.set("loops", m.Loops())
				a.pr.set("coloops", m.Coloops())
				a.pr.flag("3-connected", m.IsThreeConnected())
				a.pr.kv("hash", fmt.Sprintf("%016x", m.Hash()))
				return nil
			})
		},
	}
}

// setCmd builds a command whose positional arguments are one element set.
func (a *app) setCmd(use, short string, op func(X []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [element...]",
		Short: short,
		RunE: func(_ *cobra.Command, args []string) error {
			return a.timed(use, func() error { return op(args) })
		},
	}
}

func (a *app) rank(X []string) error {
	r, err := a.model.Rank(X)
	if err != nil {
		return err
	}
	a.pr.kv("rank", r)
	return nil
}

func (a *app) corank(X []string) error {
	r, err := a.model.Corank(X)
	if err != nil {
		return err
	}
	a.pr.kv("corank", r)
	return nil
}

func (a *app) lambda(X []string) error {
	l, err := a.model.Connectivity(X)
	if err != nil {
		return err
	}
	a.pr.kv("connectivity", l)
	return nil
}

func (a *app) closure(X []string) error {
	cl, err := a.model.Closure(X)
	if err != nil {
		return err
	}
	a.pr.set("closure", cl)
	return nil
}

func (a *app) coclosure(X []string) error {
	cl, err := a.model.Coclosure(X)
	if err != nil {
		return err
	}
	a.pr.set("coclosure", cl)
	return nil
}

func (a *app) circuit(X []string) error {
	c, err := a.model.Circuit(X)
	if errors.Is(err, matroid.ErrNoCircuit) {
		a.pr.kv("circuit", "none, the set is independent")
		return nil
	}
	if err != nil {
		return err
	}
	a.pr.set("circuit", c)
	return nil
}

func (a *app) cocircuit(X []string) error {
	c, err := a.model.Cocircuit(X)
	if errors.Is(err, matroid.ErrNoCocircuit) {
		a.pr.kv("cocircuit", "none, the set is coindependent")
		return nil
	}
	if err != nil {
		return err
	}
	a.pr.set("cocircuit", c)
	return nil
}

func (a *app) independent(X []string) error {
	m := a.model
	checks := []struct {
		key string
		fn  func([]string) (bool, error)
	}{
		{"independent", m.IsIndependent},
		{"circuit", m.IsCircuit},
		{"closed", m.IsClosed},
		{"coindependent", m.IsCoindependent},
		{"cocircuit", m.IsCocircuit},
	}
	for _, c := range checks {
		ok, err := c.fn(X)
		if err != nil {
			return err
		}
		a.pr.flag(c.key, ok)
	}
	return nil
}

func (a *app) basis(X []string) error {
	if len(X) == 0 {
		X = a.model.Groundset()
	}
	b, err := a.model.MaxIndependent(X)
	if err != nil {
		return err
	}
	cb, err := a.model.MaxCoindependent(X)
	if err != nil {
		return err
	}
	a.pr.set("max independent", b)
	a.pr.set("max coindependent", cb)
	return nil
}

func (a *app) minorCmd() *cobra.Command {
	var contract, del []string
	cmd := &cobra.Command{
		Use:   "minor",
		Short: "Contract and delete elements",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.timed("minor", func() error {
				n, err := a.model.Minor(contract, del)
				if err != nil {
					return err
				}
				a.pr.model(n)
				return nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&contract, "contract", nil, "elements to contract")
	cmd.Flags().StringSliceVar(&del, "delete", nil, "elements to delete")

	return cmd
}

func (a *app) extendCmd() *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "extend <u> [v]",
		Short: "Add an element between u and v (a loop when v is omitted)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.timed("extend", func() error {
				v := ""
				if len(args) == 2 {
					v = args[1]
				}
				n, err := a.model.Extension(args[0], v, label)
				if err != nil {
					return err
				}
				a.pr.model(n)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "label of the new element (default: smallest unused number)")

	return cmd
}

func (a *app) coextendCmd() *cobra.Command {
	var (
		label string
		moved []string
	)
	cmd := &cobra.Command{
		Use:   "coextend <u>",
		Short: "Split vertex u, moving the given edges to the new vertex",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.timed("coextend", func() error {
				n, err := a.model.Coextension(args[0], moved, label)
				if err != nil {
					return err
				}
				a.pr.model(n)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "label of the new element (default: smallest unused number)")
	cmd.Flags().StringSliceVar(&moved, "edges", nil, "elements moved to the new vertex")

	return cmd
}

// sequenceFlags are shared by extensions and coextensions.
type sequenceFlags struct {
	label    string
	vertices []string
	limit    int
}

func (s *sequenceFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.label, "label", "", "label of the new element (default: smallest unused number)")
	cmd.Flags().StringSliceVar(&s.vertices, "vertices", nil, "candidate vertices (default: all)")
	cmd.Flags().IntVar(&s.limit, "limit", 0, "stop after this many models (0: all)")
}

func (s *sequenceFlags) candidates(cmd *cobra.Command) []string {
	if cmd.Flags().Changed("vertices") {
		return append([]string{}, s.vertices...)
	}
	return nil
}

func (a *app) extensionsCmd() *cobra.Command {
	var sf sequenceFlags
	cmd := &cobra.Command{
		Use:   "extensions",
		Short: "Enumerate graphic single-element extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.timed("extensions", func() error {
				seq, err := a.model.Extensions(sf.label, sf.candidates(cmd))
				if err != nil {
					return err
				}
				a.drain("extensions", seq, sf.limit)
				return nil
			})
		},
	}
	sf.bind(cmd)

	return cmd
}

func (a *app) coextensionsCmd() *cobra.Command {
	var sf sequenceFlags
	cmd := &cobra.Command{
		Use:   "coextensions",
		Short: "Enumerate graphic single-element coextensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.timed("coextensions", func() error {
				seq, err := a.model.Coextensions(sf.candidates(cmd), sf.label)
				if err != nil {
					return err
				}
				a.drain("coextensions", seq, sf.limit)
				return nil
			})
		},
	}
	sf.bind(cmd)

	return cmd
}

// drain prints up to limit models of seq (all when limit ≤ 0).
func (a *app) drain(name string, seq iter.Seq[*matroid.Matroid], limit int) {
	n := 0
	for m := range seq {
		n++
		a.pr.kv(fmt.Sprintf("#%d", n), fmt.Sprintf("%s, loops %s, coloops %s",
			m, formatSet(m.Loops()), formatSet(m.Coloops())))
		if limit > 0 && n >= limit {
			break
		}
	}
	a.metrics.AddYields(name, n)
	a.pr.kv("models", n)
	a.logger.Debug("sequence drained", slog.String("sequence", name), slog.Int("models", n))
}

func (a *app) twistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "twist <element...>",
		Short: "Whitney twist on a set displaying a 2-separation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.timed("twist", func() error {
				n, err := a.model.Twist(args)
				if err != nil {
					return err
				}
				a.pr.model(n)
				return nil
			})
		},
	}
}

func (a *app) oneSumCmd() *cobra.Command {
	var u, v string
	cmd := &cobra.Command{
		Use:   "one-sum <element...>",
		Short: "Re-glue the block X at a different vertex",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.timed("one-sum", func() error {
				n, err := a.model.OneSum(args, u, v)
				if err != nil {
					return err
				}
				a.pr.model(n)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&u, "u", "", "vertex spanned by the block")
	cmd.Flags().StringVar(&v, "v", "", "vertex spanned by the rest of the graph")
	_ = cmd.MarkFlagRequired("u")
	_ = cmd.MarkFlagRequired("v")

	return cmd
}

// otherFlags select the second model of isomorphic and has-minor.
type otherFlags struct {
	configPath string
	family     string
	n          int
}

func (o *otherFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configPath, "other-config", "", "workload file of the other model")
	cmd.Flags().StringVar(&o.family, "other-family", "", "builder family of the other model")
	cmd.Flags().IntVar(&o.n, "other-n", 0, "family size of the other model")
	cmd.MarkFlagsOneRequired("other-config", "other-family")
	cmd.MarkFlagsMutuallyExclusive("other-config", "other-family")
}

func (a *app) other(o *otherFlags) (*matroid.Matroid, error) {
	gc := config.GraphConfig{Family: o.family, N: o.n}
	if o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		gc = cfg.Graph
	}

	return a.load(gc)
}

func (a *app) isomorphicCmd() *cobra.Command {
	var of otherFlags
	cmd := &cobra.Command{
		Use:   "isomorphic",
		Short: "Test whether another model is isomorphic to this one",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.timed("isomorphic", func() error {
				n, err := a.other(&of)
				if err != nil {
					return err
				}
				phi, ok, err := a.model.Isomorphism(n)
				if err != nil {
					return err
				}
				a.pr.flag("isomorphic", ok)
				if ok {
					a.pr.mapping("map", phi)
				}
				return nil
			})
		},
	}
	of.bind(cmd)

	return cmd
}

func (a *app) hasMinorCmd() *cobra.Command {
	var of otherFlags
	cmd := &cobra.Command{
		Use:   "has-minor",
		Short: "Test whether another model is a minor of this one",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.timed("has-minor", func() error {
				n, err := a.other(&of)
				if err != nil {
					return err
				}
				cert, ok, err := a.model.HasMinor(n)
				if err != nil {
					return err
				}
				a.pr.flag("minor", ok)
				if ok {
					a.pr.set("contract", cert.Contractions)
					a.pr.set("delete", cert.Deletions)
					a.pr.mapping("map", cert.Map)
				}
				return nil
			})
		},
	}
	of.bind(cmd)

	return cmd
}
