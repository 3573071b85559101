package grpc

// proto.go defines the gRPC server interface derived from
// digicar/showcase/v1/showcase.proto. This file serves as a stand-in for
// buf-generated code; messages alias the application DTOs and travel over the
// JSON codec registered in json_codec.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/yisus17-stack/digicar-sub001/internal/application/dto"
)

// Message aliases. A generated proto package would declare its own structs;
// the hand-written stand-in reuses the DTOs directly.
type (
	BrowseCatalogRequest    = dto.BrowseCatalogRequest
	BrowseCatalogResponse   = dto.BrowseCatalogResponse
	GetVehicleRequest       = dto.GetVehicleRequest
	GetVehicleResponse      = dto.VehicleResponse
	CompareVehiclesRequest  = dto.CompareVehiclesRequest
	CompareVehiclesResponse = dto.CompareVehiclesResponse
	QuoteLoanRequest        = dto.QuoteLoanRequest
	QuoteLoanResponse       = dto.QuoteLoanResponse
)

// ShowcaseServiceServer is the server API for ShowcaseService.
// It mirrors the proto interface from digicar.showcase.v1.ShowcaseService.
type ShowcaseServiceServer interface {
	BrowseCatalog(context.Context, *BrowseCatalogRequest) (*BrowseCatalogResponse, error)
	GetVehicle(context.Context, *GetVehicleRequest) (*GetVehicleResponse, error)
	CompareVehicles(context.Context, *CompareVehiclesRequest) (*CompareVehiclesResponse, error)
	QuoteLoan(context.Context, *QuoteLoanRequest) (*QuoteLoanResponse, error)
	mustEmbedUnimplementedShowcaseServiceServer()
}

// UnimplementedShowcaseServiceServer provides forward-compatible default implementations.
type UnimplementedShowcaseServiceServer struct{}

func (UnimplementedShowcaseServiceServer) BrowseCatalog(context.Context, *BrowseCatalogRequest) (*BrowseCatalogResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BrowseCatalog not implemented")
}
func (UnimplementedShowcaseServiceServer) GetVehicle(context.Context, *GetVehicleRequest) (*GetVehicleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetVehicle not implemented")
}
func (UnimplementedShowcaseServiceServer) CompareVehicles(context.Context, *CompareVehiclesRequest) (*CompareVehiclesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompareVehicles not implemented")
}
func (UnimplementedShowcaseServiceServer) QuoteLoan(context.Context, *QuoteLoanRequest) (*QuoteLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QuoteLoan not implemented")
}
func (UnimplementedShowcaseServiceServer) mustEmbedUnimplementedShowcaseServiceServer() {}

// RegisterShowcaseServiceServer registers the ShowcaseServiceServer with the gRPC server.
func RegisterShowcaseServiceServer(s *grpclib.Server, srv ShowcaseServiceServer) {
	s.RegisterService(&_ShowcaseService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _ShowcaseService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "digicar.showcase.v1.ShowcaseService",
	HandlerType: (*ShowcaseServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "BrowseCatalog", Handler: _ShowcaseService_BrowseCatalog_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "GetVehicle", Handler: _ShowcaseService_GetVehicle_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "CompareVehicles", Handler: _ShowcaseService_CompareVehicles_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "QuoteLoan", Handler: _ShowcaseService_QuoteLoan_Handler},             //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _ShowcaseService_BrowseCatalog_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(BrowseCatalogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowcaseServiceServer).BrowseCatalog(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/digicar.showcase.v1.ShowcaseService/BrowseCatalog",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShowcaseServiceServer).BrowseCatalog(ctx, req.(*BrowseCatalogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ShowcaseService_GetVehicle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetVehicleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowcaseServiceServer).GetVehicle(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/digicar.showcase.v1.ShowcaseService/GetVehicle",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShowcaseServiceServer).GetVehicle(ctx, req.(*GetVehicleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ShowcaseService_CompareVehicles_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompareVehiclesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowcaseServiceServer).CompareVehicles(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/digicar.showcase.v1.ShowcaseService/CompareVehicles",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShowcaseServiceServer).CompareVehicles(ctx, req.(*CompareVehiclesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ShowcaseService_QuoteLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuoteLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowcaseServiceServer).QuoteLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/digicar.showcase.v1.ShowcaseService/QuoteLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShowcaseServiceServer).QuoteLoan(ctx, req.(*QuoteLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}
