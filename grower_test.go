package sapling

import (
	"context"
	"testing"

	"github.com/marc-chan/sapling/tree"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGrow(t *testing.T) {
	Convey("Given a dataset cleanly separable on its only feature", t, func() {
		ds := mustDataset(t,
			[][]float64{{1}, {2}, {3}, {10}, {11}, {12}},
			[]float64{0, 0, 0, 1, 1, 1})

		Convey("Grow yields a stump with two pure leaves", func() {
			tr, err := New(5).Grow(context.Background(), ds)
			So(err, ShouldBeNil)
			So(tr.Root.Leaf(), ShouldBeFalse)
			So(tr.Root.FeatureIndex, ShouldEqual, 0)
			So(tr.Root.Threshold, ShouldEqual, 10.0)
			So(tr.Root.Impurity, ShouldEqual, 0.0)
			So(tr.Root.Left.Leaf(), ShouldBeTrue)
			So(tr.Root.Right.Leaf(), ShouldBeTrue)
			So(tr.Root.Left.Prediction.ProbabilityOf(0), ShouldEqual, 1.0)
			So(tr.Root.Right.Prediction.ProbabilityOf(1), ShouldEqual, 1.0)
			So(tr.Depth(), ShouldEqual, 2)
			So(tr.Size(), ShouldEqual, 3)
		})

		Convey("Grow classifies its own training samples perfectly", func() {
			tr, err := New(5).Grow(context.Background(), ds)
			So(err, ShouldBeNil)
			accuracy, err := tr.Test(ds)
			So(err, ShouldBeNil)
			So(accuracy, ShouldEqual, 1.0)
		})
	})

	Convey("Given a dataset with a single class", t, func() {
		ds := mustDataset(t,
			[][]float64{{1}, {2}, {3}},
			[]float64{0, 0, 0})

		Convey("Grow returns a lone leaf without searching for splits", func() {
			tr, err := New(5).Grow(context.Background(), ds)
			So(err, ShouldBeNil)
			So(tr.Root.Leaf(), ShouldBeTrue)
			So(tr.Root.Depth, ShouldEqual, 1)
			So(tr.Root.Prediction.ProbabilityOf(0), ShouldEqual, 1.0)
			So(tr.Root.Prediction.Weight(), ShouldEqual, 3)
		})
	})

	Convey("Given a dataset the depth bound cuts short", t, func() {
		ds := mustDataset(t,
			[][]float64{{1}, {2}, {3}, {4}},
			[]float64{0, 1, 1, 0})

		Convey("Grow with depth 1 splits once and leaves the impure side as is", func() {
			tr, err := New(1).Grow(context.Background(), ds)
			So(err, ShouldBeNil)
			So(tr.Root.Leaf(), ShouldBeFalse)
			So(tr.Root.Threshold, ShouldEqual, 2.0)
			So(tr.Root.Left.Leaf(), ShouldBeTrue)
			So(tr.Root.Right.Leaf(), ShouldBeTrue)
			So(tr.Root.Left.Prediction.ProbabilityOf(0), ShouldEqual, 1.0)
			So(tr.Root.Right.Prediction.ProbabilityOf(1), ShouldAlmostEqual, 2.0/3.0)
			So(tr.Root.Right.Prediction.ProbabilityOf(0), ShouldAlmostEqual, 1.0/3.0)
			So(tr.Root.Right.Prediction.Weight(), ShouldEqual, 3)
		})

		Convey("Grow with a generous depth resolves every sample", func() {
			tr, err := New(5).Grow(context.Background(), ds)
			So(err, ShouldBeNil)
			accuracy, err := tr.Test(ds)
			So(err, ShouldBeNil)
			So(accuracy, ShouldEqual, 1.0)
		})
	})

	Convey("Given an alternating dataset and tight stopping parameters", t, func() {
		ds := mustDataset(t,
			[][]float64{{1}, {2}, {3}, {4}, {5}, {6}, {7}, {8}},
			[]float64{0, 1, 0, 1, 0, 1, 0, 1})
		maxDepth, nodeMin := 2, 2
		tr, err := New(maxDepth, NodeMin(nodeMin)).Grow(context.Background(), ds)
		So(err, ShouldBeNil)

		Convey("No internal node sits below the depth bound", func() {
			err := tr.Traverse(false, func(n *tree.Node) error {
				if !n.Leaf() {
					So(n.Depth, ShouldBeLessThanOrEqualTo, maxDepth)
				}
				So(n.Depth, ShouldBeLessThanOrEqualTo, maxDepth+1)
				return nil
			})
			So(err, ShouldBeNil)
		})

		Convey("Every leaf distribution sums to 1 over a positive weight", func() {
			err := tr.Traverse(false, func(n *tree.Node) error {
				if !n.Leaf() {
					return nil
				}
				total := 0.0
				for _, p := range n.Prediction.Probabilities() {
					total += p
				}
				So(total, ShouldAlmostEqual, 1.0)
				So(n.Prediction.Weight(), ShouldBeGreaterThan, 0)
				return nil
			})
			So(err, ShouldBeNil)
		})

		Convey("Every impure leaf was stopped by depth or size", func() {
			err := tr.Traverse(false, func(n *tree.Node) error {
				if !n.Leaf() || len(n.Prediction.Probabilities()) == 1 {
					return nil
				}
				stopped := n.Depth > maxDepth || n.Prediction.Weight() < nodeMin
				So(stopped, ShouldBeTrue)
				return nil
			})
			So(err, ShouldBeNil)
		})
	})

	Convey("Given invalid growth inputs", t, func() {
		ds := mustDataset(t,
			[][]float64{{1}, {2}},
			[]float64{0, 1})

		Convey("Grow rejects a non-positive maximum depth", func() {
			_, err := New(0).Grow(context.Background(), ds)
			So(err, ShouldEqual, ErrNonPositiveMaxDepth)
			_, err = New(-3).Grow(context.Background(), ds)
			So(err, ShouldEqual, ErrNonPositiveMaxDepth)
		})

		Convey("Grow rejects an empty dataset", func() {
			empty := mustDataset(t, nil, nil)
			_, err := New(5).Grow(context.Background(), empty)
			So(err, ShouldEqual, ErrEmptyDataset)
			_, err = New(5).Grow(context.Background(), nil)
			So(err, ShouldEqual, ErrEmptyDataset)
		})
	})

	Convey("Given an impure dataset with a constant feature", t, func() {
		ds := mustDataset(t,
			[][]float64{{1}, {1}, {1}, {1}},
			[]float64{0, 1, 0, 1})

		Convey("Grow surfaces the missing split instead of guessing", func() {
			tr, err := New(5).Grow(context.Background(), ds)
			So(err, ShouldEqual, ErrNoValidSplit)
			So(tr, ShouldBeNil)
		})
	})

	Convey("Given a cancelled context", t, func() {
		ds := mustDataset(t,
			[][]float64{{1}, {2}},
			[]float64{0, 1})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("Grow stops without a tree", func() {
			tr, err := New(5).Grow(ctx, ds)
			So(err, ShouldEqual, context.Canceled)
			So(tr, ShouldBeNil)
		})
	})
}
