// internal/decorators/discount.go
package decorators

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/javajoker/imi-catalog/internal/models"
)

// DiscountDecorator annotates a product with a percentage-off line. The
// percentage is rendered as given, out-of-range values included.
type DiscountDecorator struct {
	ProductDecorator
	discountPercentage float64
}

func NewDiscountDecorator(p models.Product, discountPercentage float64) *DiscountDecorator {
	return &DiscountDecorator{
		ProductDecorator:   NewProductDecorator(p),
		discountPercentage: discountPercentage,
	}
}

func (d *DiscountDecorator) DiscountPercentage() float64 { return d.discountPercentage }

func (d *DiscountDecorator) Describe() string {
	return d.decorated.Describe() + "\n" +
		fmt.Sprintf("The product: %s is now %s%% off", d.decorated, formatPercentage(d.discountPercentage))
}

// formatPercentage renders v like a Java double: plain decimal with at least
// one fractional digit inside [1e-3, 1e7), "1.0E7" style notation outside it.
func formatPercentage(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		return withFraction(strconv.FormatFloat(v, 'f', -1, 64))
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	n, _ := strconv.Atoi(exp)
	return withFraction(mantissa) + "E" + strconv.Itoa(n)
}

func withFraction(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
