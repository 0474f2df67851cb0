package knowledge

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty/gocty"

	"tech-verdict/core/types"
	tverrors "tech-verdict/internal/errors"
)

// A catalog file adds or replaces technologies without code changes:
//
//	technology "cloudrun" {
//	  name       = "Google Cloud Run"
//	  attributes = { cost = 0.8, scalability = 0.9 }
//
//	  tradeoff {
//	    benefit     = "Scales to zero"
//	    cost        = "Request timeouts"
//	    confidence  = "high"
//	    data_source = "GCP documentation"
//	  }
//
//	  constraint_tradeoff "budget" {
//	    benefit = "Per-request billing"
//	    cost    = "Egress charges"
//	  }
//	}
//
// Files ending in .json are read as HCL JSON syntax.
type catalogFile struct {
	Technologies []technologyBlock `hcl:"technology,block"`
}

type technologyBlock struct {
	Key                 string                    `hcl:"key,label"`
	Name                string                    `hcl:"name"`
	Attributes          hcl.Expression            `hcl:"attributes"`
	Tradeoffs           []tradeoffBlock           `hcl:"tradeoff,block"`
	ConstraintTradeoffs []constraintTradeoffBlock `hcl:"constraint_tradeoff,block"`
}

type tradeoffBlock struct {
	Benefit    string `hcl:"benefit"`
	Cost       string `hcl:"cost"`
	Confidence string `hcl:"confidence,optional"`
	DataSource string `hcl:"data_source,optional"`
}

type constraintTradeoffBlock struct {
	Category   string `hcl:"category,label"`
	Benefit    string `hcl:"benefit"`
	Cost       string `hcl:"cost"`
	Confidence string `hcl:"confidence,optional"`
	DataSource string `hcl:"data_source,optional"`
}

// LoadCatalog reads a catalog file and merges it over the built-in base.
func LoadCatalog(path string) (*Base, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, tverrors.Wrap(tverrors.TypeCatalog, "reading catalog", err)
	}
	return MergeCatalog(Default(), path, src)
}

// MergeCatalog decodes src and returns a new Base with its technologies
// layered over base. base itself is left untouched.
func MergeCatalog(base *Base, filename string, src []byte) (*Base, error) {
	var file catalogFile
	if err := hclsimple.Decode(filename, src, nil, &file); err != nil {
		return nil, tverrors.Wrap(tverrors.TypeCatalog, "decoding "+filename, err)
	}

	b := from(base)
	for _, tb := range file.Technologies {
		if err := addTechnology(b, filename, tb); err != nil {
			return nil, err
		}
	}
	return b.build(), nil
}

func addTechnology(b *builder, filename string, tb technologyBlock) error {
	if tb.Name == "" {
		return tverrors.Catalog(filename, fmt.Sprintf("technology %q has an empty name", tb.Key))
	}

	attrs, err := decodeAttributes(filename, tb)
	if err != nil {
		return err
	}
	b.technology(tb.Key, tb.Name, attrs...)

	list := make([]types.TradeOff, 0, len(tb.Tradeoffs))
	for _, t := range tb.Tradeoffs {
		to, err := toTradeOff(filename, tb.Key, t.Benefit, t.Cost, t.Confidence, t.DataSource)
		if err != nil {
			return err
		}
		list = append(list, to)
	}
	b.tradeoffs(tb.Name, list...)

	for _, ct := range tb.ConstraintTradeoffs {
		category := types.Category(ct.Category)
		if !category.IsValid() {
			return tverrors.Catalog(filename, fmt.Sprintf("technology %q: unknown category %q", tb.Key, ct.Category))
		}
		to, err := toTradeOff(filename, tb.Key, ct.Benefit, ct.Cost, ct.Confidence, ct.DataSource)
		if err != nil {
			return err
		}
		b.constraintTradeoff(tb.Name, category, to)
	}
	return nil
}

// decodeAttributes walks the attributes object in source order
func decodeAttributes(filename string, tb technologyBlock) ([]Attribute, error) {
	pairs, diags := hcl.ExprMap(tb.Attributes)
	if diags.HasErrors() {
		return nil, tverrors.Wrap(tverrors.TypeCatalog, fmt.Sprintf("technology %q: attributes must be an object", tb.Key), diags)
	}
	if len(pairs) == 0 {
		return nil, tverrors.Catalog(filename, fmt.Sprintf("technology %q has no attributes", tb.Key))
	}

	attrs := make([]Attribute, 0, len(pairs))
	for _, pair := range pairs {
		kv, diags := pair.Key.Value(nil)
		if diags.HasErrors() {
			return nil, tverrors.Wrap(tverrors.TypeCatalog, fmt.Sprintf("technology %q: attribute key", tb.Key), diags)
		}
		var key string
		if err := gocty.FromCtyValue(kv, &key); err != nil {
			return nil, tverrors.Wrap(tverrors.TypeCatalog, fmt.Sprintf("technology %q: attribute key", tb.Key), err)
		}

		vv, diags := pair.Value.Value(nil)
		if diags.HasErrors() {
			return nil, tverrors.Wrap(tverrors.TypeCatalog, fmt.Sprintf("technology %q: attribute %q", tb.Key, key), diags)
		}
		var value float64
		if err := gocty.FromCtyValue(vv, &value); err != nil {
			return nil, tverrors.Wrap(tverrors.TypeCatalog, fmt.Sprintf("technology %q: attribute %q must be a number", tb.Key, key), err)
		}
		if value < 0 || value > 1 {
			return nil, tverrors.Catalog(filename, fmt.Sprintf("technology %q: attribute %q=%v outside [0,1]", tb.Key, key, value))
		}
		attrs = append(attrs, Attribute{Key: key, Value: value})
	}
	return attrs, nil
}

func toTradeOff(filename, key, benefit, cost, confidence, source string) (types.TradeOff, error) {
	c := types.Confidence(confidence)
	if confidence == "" {
		c = types.ConfidenceMedium
	}
	if !c.IsValid() {
		return types.TradeOff{}, tverrors.Catalog(filename, fmt.Sprintf("technology %q: unknown confidence %q", key, confidence))
	}
	if benefit == "" || cost == "" {
		return types.TradeOff{}, tverrors.Catalog(filename, fmt.Sprintf("technology %q: trade-off needs both benefit and cost", key))
	}
	return types.TradeOff{Benefit: benefit, Cost: cost, Confidence: c, DataSource: source}, nil
}
