package options

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/nhdewitt/checkcpu/internal/stat"
)

var _ pflag.Value = &CategoryListVar{}

// CategoryListVar is a comma separated list of cpu category names. It
// implements the pflag.Value interface.
type CategoryListVar struct {
	Value *[]stat.Category
}

func NewCategoryListVar(v *[]stat.Category) *CategoryListVar {
	return &CategoryListVar{Value: v}
}

// Set replaces the list; names are validated against the known categories.
func (v *CategoryListVar) Set(s string) error {
	cats, err := stat.ParseCategories(s)
	if err != nil {
		return err
	}
	*v.Value = cats
	return nil
}

func (v *CategoryListVar) String() string {
	if v.Value == nil {
		return ""
	}
	names := make([]string, 0, len(*v.Value))
	for _, c := range *v.Value {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}

func (v *CategoryListVar) Type() string {
	return "categories"
}
