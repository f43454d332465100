package flatten

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/crimson-sun/treeburst/internal/model"
)

// countPrinter groups sample counts with thousands separators so wide
// wedges stay readable ("n=12,843").
var countPrinter = message.NewPrinter(language.English)

// splitLabels formats the condition labels for the two children of a
// split: "<feature> <= <threshold>" for the left, "<feature> > <threshold>"
// for the right.
func splitLabels(feature string, threshold float64, precision int) (left, right string) {
	left = fmt.Sprintf("%s <= %.*f", feature, precision, threshold)
	right = fmt.Sprintf("%s > %.*f", feature, precision, threshold)
	return left, right
}

// fallbackFeatureName is the degraded label used when no display name
// can be resolved for a feature index.
func fallbackFeatureName(index int) string {
	return fmt.Sprintf("feature_%d", index)
}

// leafSuffix describes a leaf's outcome: the predicted class for
// classification trees, the predicted value for regression trees, plus
// the sample count. Appended to the split label so leaf wedges are
// distinguishable from internal splits.
func leafSuffix(t *model.Tree, id int) string {
	n := countPrinter.Sprintf("%d", int64(t.WedgeValue(id)))
	if len(t.Value[id]) == 0 {
		return fmt.Sprintf(" [n=%s]", n)
	}
	if t.Regression() {
		return fmt.Sprintf(" [value %.2f, n=%s]", t.Value[id][0], n)
	}
	return fmt.Sprintf(" [class %s, n=%s]", predictedClass(t, id), n)
}

// predictedClass returns the display name of the majority class in the
// leaf's value row, or the class index when no names are available.
func predictedClass(t *model.Tree, id int) string {
	row := t.Value[id]
	best := 0
	for i := 1; i < len(row); i++ {
		if row[i] > row[best] {
			best = i
		}
	}
	if best < len(t.ClassNames) && t.ClassNames[best] != "" {
		return t.ClassNames[best]
	}
	return fmt.Sprintf("%d", best)
}
