package grpc

import (
	"context"

	"catalog_service/internal/domain"

	grpcgo "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "catalog.CatalogService"

type IDRequest struct {
	ID int64 `json:"id"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type PageRequest struct {
	PageNumber int    `json:"pageNumber"`
	PageSize   int    `json:"pageSize"`
	SortBy     string `json:"sortBy"`
	SortOrder  string `json:"sortOrder"`
}

type KeywordRequest struct {
	Keyword string      `json:"keyword"`
	Page    PageRequest `json:"page"`
}

type CategoryPage = domain.PagedResponse[domain.CategoryDTO]

type ProductPage = domain.PagedResponse[domain.ProductDTO]

type CatalogServiceServer interface {
	GetCategory(context.Context, *IDRequest) (*domain.CategoryDTO, error)
	ListCategories(context.Context, *PageRequest) (*CategoryPage, error)
	CreateCategory(context.Context, *CreateCategoryRequest) (*domain.CategoryDTO, error)
	GetProduct(context.Context, *IDRequest) (*domain.ProductDTO, error)
	ListProducts(context.Context, *PageRequest) (*ProductPage, error)
	SearchProductsByKeyword(context.Context, *KeywordRequest) (*ProductPage, error)
	DeleteProduct(context.Context, *IDRequest) (*emptypb.Empty, error)
}

type unaryHandlerFunc = func(srv any, ctx context.Context, dec func(any) error, interceptor grpcgo.UnaryServerInterceptor) (any, error)

func unary[Req any, Resp any](method string, call func(CatalogServiceServer, context.Context, *Req) (Resp, error)) unaryHandlerFunc {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpcgo.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CatalogServiceServer), ctx, in)
		}
		info := &grpcgo.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CatalogServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var catalogServiceDesc = grpcgo.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpcgo.MethodDesc{
		{MethodName: "GetCategory", Handler: unary("GetCategory", CatalogServiceServer.GetCategory)},
		{MethodName: "ListCategories", Handler: unary("ListCategories", CatalogServiceServer.ListCategories)},
		{MethodName: "CreateCategory", Handler: unary("CreateCategory", CatalogServiceServer.CreateCategory)},
		{MethodName: "GetProduct", Handler: unary("GetProduct", CatalogServiceServer.GetProduct)},
		{MethodName: "ListProducts", Handler: unary("ListProducts", CatalogServiceServer.ListProducts)},
		{MethodName: "SearchProductsByKeyword", Handler: unary("SearchProductsByKeyword", CatalogServiceServer.SearchProductsByKeyword)},
		{MethodName: "DeleteProduct", Handler: unary("DeleteProduct", CatalogServiceServer.DeleteProduct)},
	},
	Streams: []grpcgo.StreamDesc{},
}

func RegisterCatalogServiceServer(s grpcgo.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&catalogServiceDesc, srv)
}
