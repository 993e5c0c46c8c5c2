package grpc

import (
	"context"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	grpcgo "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
)

// CatalogClient calls CatalogService over a connection using the JSON codec.
type CatalogClient struct {
	conn grpcgo.ClientConnInterface
	log  *logrus.Logger
}

func NewCatalogClient(conn grpcgo.ClientConnInterface, logger *logrus.Logger) *CatalogClient {
	return &CatalogClient{conn: conn, log: logger}
}

// Dial opens an insecure connection to target. The caller closes the returned conn.
func Dial(target string, opts ...grpcgo.DialOption) (*grpcgo.ClientConn, error) {
	opts = append([]grpcgo.DialOption{grpcgo.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpcgo.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to catalog service at %s: %w", target, err)
	}
	return conn, nil
}

func (c *CatalogClient) invoke(ctx context.Context, method string, in, out any) error {
	err := c.conn.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, grpcgo.CallContentSubtype(CodecName))
	if err != nil {
		c.log.Warnf("CatalogClient(gRPC): %s failed: %v", method, err)
	}
	return err
}

func (c *CatalogClient) GetCategory(ctx context.Context, id int64) (*domain.CategoryDTO, error) {
	out := new(domain.CategoryDTO)
	if err := c.invoke(ctx, "GetCategory", &IDRequest{ID: id}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogClient) ListCategories(ctx context.Context, req *PageRequest) (*CategoryPage, error) {
	out := new(CategoryPage)
	if err := c.invoke(ctx, "ListCategories", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogClient) CreateCategory(ctx context.Context, name string) (*domain.CategoryDTO, error) {
	out := new(domain.CategoryDTO)
	if err := c.invoke(ctx, "CreateCategory", &CreateCategoryRequest{Name: name}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogClient) GetProduct(ctx context.Context, id int64) (*domain.ProductDTO, error) {
	out := new(domain.ProductDTO)
	if err := c.invoke(ctx, "GetProduct", &IDRequest{ID: id}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogClient) ListProducts(ctx context.Context, req *PageRequest) (*ProductPage, error) {
	out := new(ProductPage)
	if err := c.invoke(ctx, "ListProducts", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogClient) SearchProductsByKeyword(ctx context.Context, req *KeywordRequest) (*ProductPage, error) {
	out := new(ProductPage)
	if err := c.invoke(ctx, "SearchProductsByKeyword", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogClient) DeleteProduct(ctx context.Context, id int64) error {
	return c.invoke(ctx, "DeleteProduct", &IDRequest{ID: id}, new(emptypb.Empty))
}
