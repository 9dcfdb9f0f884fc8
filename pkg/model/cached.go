package model

import (
	"context"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/cache"
	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
)

// CachedModel serves repeated prompts from the on-disk response cache, so
// re-running an evaluation does not repeat paid API calls.
type CachedModel struct {
	Model core.Model
	Cache *cache.Cache
}

func (c CachedModel) Name() string {
	if c.Model == nil {
		return ""
	}
	return c.Model.Name()
}

func (c CachedModel) Generate(ctx context.Context, prompt string, opts core.GenerateOptions) (core.Response, error) {
	if c.Model == nil {
		return core.Response{}, nil
	}
	if c.Cache != nil {
		if resp, ok := c.Cache.Get(c.Name(), prompt, opts); ok {
			return resp, nil
		}
	}
	resp, err := c.Model.Generate(ctx, prompt, opts)
	if err != nil {
		return core.Response{}, err
	}
	if c.Cache != nil {
		_ = c.Cache.Set(c.Name(), prompt, opts, resp)
	}
	return resp, nil
}
