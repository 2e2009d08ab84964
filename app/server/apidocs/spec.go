package apidocs

import (
	"article-admin/app/server/gen/oapi/admin"
	"context"
	"fmt"
	"github.com/getkin/kin-openapi/openapi3"
)

// Spec 取出生成代码中内嵌的管理接口文档，把服务器地址改为实际的路由前缀并校验
func Spec(ctx context.Context, prefix string) (*openapi3.T, error) {
	swg, err := admin.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load admin swagger: %w", err)
	}

	swg.Servers = openapi3.Servers{&openapi3.Server{URL: prefix}}

	if err = swg.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate admin swagger: %w", err)
	}

	return swg, nil
}

// SpecJSON 同 Spec ，返回 JSON 编码的文档
func SpecJSON(ctx context.Context, prefix string) ([]byte, error) {
	swg, err := Spec(ctx, prefix)
	if err != nil {
		return nil, err
	}

	b, err := swg.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal admin swagger: %w", err)
	}
	return b, nil
}
