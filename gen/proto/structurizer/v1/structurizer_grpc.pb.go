// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: structurizer/v1/structurizer.proto

package structurizerpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ExtractionService_UploadDocument_FullMethodName    = "/structurizer.v1.ExtractionService/UploadDocument"
	ExtractionService_ListExtractions_FullMethodName   = "/structurizer.v1.ExtractionService/ListExtractions"
	ExtractionService_GetExtraction_FullMethodName     = "/structurizer.v1.ExtractionService/GetExtraction"
	ExtractionService_DeleteExtraction_FullMethodName  = "/structurizer.v1.ExtractionService/DeleteExtraction"
	ExtractionService_RecognizeText_FullMethodName     = "/structurizer.v1.ExtractionService/RecognizeText"
	ExtractionService_ConfirmText_FullMethodName       = "/structurizer.v1.ExtractionService/ConfirmText"
	ExtractionService_ClassifyDocument_FullMethodName  = "/structurizer.v1.ExtractionService/ClassifyDocument"
	ExtractionService_StructureDocument_FullMethodName = "/structurizer.v1.ExtractionService/StructureDocument"
	ExtractionService_ConfirmStructured_FullMethodName = "/structurizer.v1.ExtractionService/ConfirmStructured"
)

// ExtractionServiceClient is the client API for ExtractionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExtractionService drives a document through the pipeline:
// TO_RECOGNIZE -> TO_EXTRACT -> TO_VERIFY.
type ExtractionServiceClient interface {
	UploadDocument(ctx context.Context, in *UploadDocumentRequest, opts ...grpc.CallOption) (*UploadDocumentResponse, error)
	ListExtractions(ctx context.Context, in *ListExtractionsRequest, opts ...grpc.CallOption) (*ListExtractionsResponse, error)
	GetExtraction(ctx context.Context, in *GetExtractionRequest, opts ...grpc.CallOption) (*GetExtractionResponse, error)
	DeleteExtraction(ctx context.Context, in *DeleteExtractionRequest, opts ...grpc.CallOption) (*DeleteExtractionResponse, error)
	// RecognizeText runs text recognition on the stored document and returns
	// the recognized text without changing the extraction. Retryable.
	RecognizeText(ctx context.Context, in *RecognizeTextRequest, opts ...grpc.CallOption) (*RecognizeTextResponse, error)
	// ConfirmText persists user-approved text and advances to TO_EXTRACT.
	ConfirmText(ctx context.Context, in *ConfirmTextRequest, opts ...grpc.CallOption) (*ConfirmTextResponse, error)
	// ClassifyDocument suggests a category for the confirmed text. Retryable.
	ClassifyDocument(ctx context.Context, in *ClassifyDocumentRequest, opts ...grpc.CallOption) (*ClassifyDocumentResponse, error)
	// StructureDocument produces a structured-data draft for a category. Retryable.
	StructureDocument(ctx context.Context, in *StructureDocumentRequest, opts ...grpc.CallOption) (*StructureDocumentResponse, error)
	// ConfirmStructured persists the approved category and draft and advances
	// to TO_VERIFY.
	ConfirmStructured(ctx context.Context, in *ConfirmStructuredRequest, opts ...grpc.CallOption) (*ConfirmStructuredResponse, error)
}

type extractionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExtractionServiceClient(cc grpc.ClientConnInterface) ExtractionServiceClient {
	return &extractionServiceClient{cc}
}

func (c *extractionServiceClient) UploadDocument(ctx context.Context, in *UploadDocumentRequest, opts ...grpc.CallOption) (*UploadDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadDocumentResponse)
	err := c.cc.Invoke(ctx, ExtractionService_UploadDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ListExtractions(ctx context.Context, in *ListExtractionsRequest, opts ...grpc.CallOption) (*ListExtractionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListExtractionsResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ListExtractions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) GetExtraction(ctx context.Context, in *GetExtractionRequest, opts ...grpc.CallOption) (*GetExtractionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetExtractionResponse)
	err := c.cc.Invoke(ctx, ExtractionService_GetExtraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) DeleteExtraction(ctx context.Context, in *DeleteExtractionRequest, opts ...grpc.CallOption) (*DeleteExtractionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteExtractionResponse)
	err := c.cc.Invoke(ctx, ExtractionService_DeleteExtraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) RecognizeText(ctx context.Context, in *RecognizeTextRequest, opts ...grpc.CallOption) (*RecognizeTextResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecognizeTextResponse)
	err := c.cc.Invoke(ctx, ExtractionService_RecognizeText_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ConfirmText(ctx context.Context, in *ConfirmTextRequest, opts ...grpc.CallOption) (*ConfirmTextResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConfirmTextResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ConfirmText_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ClassifyDocument(ctx context.Context, in *ClassifyDocumentRequest, opts ...grpc.CallOption) (*ClassifyDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClassifyDocumentResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ClassifyDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) StructureDocument(ctx context.Context, in *StructureDocumentRequest, opts ...grpc.CallOption) (*StructureDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StructureDocumentResponse)
	err := c.cc.Invoke(ctx, ExtractionService_StructureDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ConfirmStructured(ctx context.Context, in *ConfirmStructuredRequest, opts ...grpc.CallOption) (*ConfirmStructuredResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConfirmStructuredResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ConfirmStructured_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractionServiceServer is the server API for ExtractionService service.
// All implementations must embed UnimplementedExtractionServiceServer
// for forward compatibility.
//
// ExtractionService drives a document through the pipeline:
// TO_RECOGNIZE -> TO_EXTRACT -> TO_VERIFY.
type ExtractionServiceServer interface {
	UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error)
	ListExtractions(context.Context, *ListExtractionsRequest) (*ListExtractionsResponse, error)
	GetExtraction(context.Context, *GetExtractionRequest) (*GetExtractionResponse, error)
	DeleteExtraction(context.Context, *DeleteExtractionRequest) (*DeleteExtractionResponse, error)
	// RecognizeText runs text recognition on the stored document and returns
	// the recognized text without changing the extraction. Retryable.
	RecognizeText(context.Context, *RecognizeTextRequest) (*RecognizeTextResponse, error)
	// ConfirmText persists user-approved text and advances to TO_EXTRACT.
	ConfirmText(context.Context, *ConfirmTextRequest) (*ConfirmTextResponse, error)
	// ClassifyDocument suggests a category for the confirmed text. Retryable.
	ClassifyDocument(context.Context, *ClassifyDocumentRequest) (*ClassifyDocumentResponse, error)
	// StructureDocument produces a structured-data draft for a category. Retryable.
	StructureDocument(context.Context, *StructureDocumentRequest) (*StructureDocumentResponse, error)
	// ConfirmStructured persists the approved category and draft and advances
	// to TO_VERIFY.
	ConfirmStructured(context.Context, *ConfirmStructuredRequest) (*ConfirmStructuredResponse, error)
	mustEmbedUnimplementedExtractionServiceServer()
}

// UnimplementedExtractionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExtractionServiceServer struct{}

func (UnimplementedExtractionServiceServer) UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UploadDocument not implemented")
}
func (UnimplementedExtractionServiceServer) ListExtractions(context.Context, *ListExtractionsRequest) (*ListExtractionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListExtractions not implemented")
}
func (UnimplementedExtractionServiceServer) GetExtraction(context.Context, *GetExtractionRequest) (*GetExtractionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetExtraction not implemented")
}
func (UnimplementedExtractionServiceServer) DeleteExtraction(context.Context, *DeleteExtractionRequest) (*DeleteExtractionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteExtraction not implemented")
}
func (UnimplementedExtractionServiceServer) RecognizeText(context.Context, *RecognizeTextRequest) (*RecognizeTextResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecognizeText not implemented")
}
func (UnimplementedExtractionServiceServer) ConfirmText(context.Context, *ConfirmTextRequest) (*ConfirmTextResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ConfirmText not implemented")
}
func (UnimplementedExtractionServiceServer) ClassifyDocument(context.Context, *ClassifyDocumentRequest) (*ClassifyDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ClassifyDocument not implemented")
}
func (UnimplementedExtractionServiceServer) StructureDocument(context.Context, *StructureDocumentRequest) (*StructureDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StructureDocument not implemented")
}
func (UnimplementedExtractionServiceServer) ConfirmStructured(context.Context, *ConfirmStructuredRequest) (*ConfirmStructuredResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ConfirmStructured not implemented")
}
func (UnimplementedExtractionServiceServer) mustEmbedUnimplementedExtractionServiceServer() {}
func (UnimplementedExtractionServiceServer) testEmbeddedByValue()                           {}

// UnsafeExtractionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExtractionServiceServer will
// result in compilation errors.
type UnsafeExtractionServiceServer interface {
	mustEmbedUnimplementedExtractionServiceServer()
}

func RegisterExtractionServiceServer(s grpc.ServiceRegistrar, srv ExtractionServiceServer) {
	// If the following call panics, it indicates UnimplementedExtractionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExtractionService_ServiceDesc, srv)
}

func _ExtractionService_UploadDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).UploadDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_UploadDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).UploadDocument(ctx, req.(*UploadDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ListExtractions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListExtractionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ListExtractions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ListExtractions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ListExtractions(ctx, req.(*ListExtractionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_GetExtraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetExtractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).GetExtraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_GetExtraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).GetExtraction(ctx, req.(*GetExtractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_DeleteExtraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteExtractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).DeleteExtraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_DeleteExtraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).DeleteExtraction(ctx, req.(*DeleteExtractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_RecognizeText_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecognizeTextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).RecognizeText(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_RecognizeText_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).RecognizeText(ctx, req.(*RecognizeTextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ConfirmText_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmTextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ConfirmText(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ConfirmText_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ConfirmText(ctx, req.(*ConfirmTextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ClassifyDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClassifyDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ClassifyDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ClassifyDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ClassifyDocument(ctx, req.(*ClassifyDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_StructureDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StructureDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).StructureDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_StructureDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).StructureDocument(ctx, req.(*StructureDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ConfirmStructured_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmStructuredRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ConfirmStructured(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ConfirmStructured_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ConfirmStructured(ctx, req.(*ConfirmStructuredRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExtractionService_ServiceDesc is the grpc.ServiceDesc for ExtractionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExtractionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "structurizer.v1.ExtractionService",
	HandlerType: (*ExtractionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadDocument",
			Handler:    _ExtractionService_UploadDocument_Handler,
		},
		{
			MethodName: "ListExtractions",
			Handler:    _ExtractionService_ListExtractions_Handler,
		},
		{
			MethodName: "GetExtraction",
			Handler:    _ExtractionService_GetExtraction_Handler,
		},
		{
			MethodName: "DeleteExtraction",
			Handler:    _ExtractionService_DeleteExtraction_Handler,
		},
		{
			MethodName: "RecognizeText",
			Handler:    _ExtractionService_RecognizeText_Handler,
		},
		{
			MethodName: "ConfirmText",
			Handler:    _ExtractionService_ConfirmText_Handler,
		},
		{
			MethodName: "ClassifyDocument",
			Handler:    _ExtractionService_ClassifyDocument_Handler,
		},
		{
			MethodName: "StructureDocument",
			Handler:    _ExtractionService_StructureDocument_Handler,
		},
		{
			MethodName: "ConfirmStructured",
			Handler:    _ExtractionService_ConfirmStructured_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "structurizer/v1/structurizer.proto",
}

const (
	VerificationService_GetDraft_FullMethodName     = "/structurizer.v1.VerificationService/GetDraft"
	VerificationService_AnalyzeDraft_FullMethodName = "/structurizer.v1.VerificationService/AnalyzeDraft"
	VerificationService_CommitRecord_FullMethodName = "/structurizer.v1.VerificationService/CommitRecord"
)

// VerificationServiceClient is the client API for VerificationService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// VerificationService reconciles a structured-data draft with the user and
// commits the final typed record.
type VerificationServiceClient interface {
	// GetDraft returns the persisted draft of a TO_VERIFY extraction as the
	// starting working object for a verification session.
	GetDraft(ctx context.Context, in *GetDraftRequest, opts ...grpc.CallOption) (*GetDraftResponse, error)
	// AnalyzeDraft reviews the client's working object against the original
	// text and returns field-addressed corrections. Non-mutating.
	AnalyzeDraft(ctx context.Context, in *AnalyzeDraftRequest, opts ...grpc.CallOption) (*AnalyzeDraftResponse, error)
	// CommitRecord validates and persists the working object as a typed record
	// and marks the extraction PROCESSED. Atomic.
	CommitRecord(ctx context.Context, in *CommitRecordRequest, opts ...grpc.CallOption) (*CommitRecordResponse, error)
}

type verificationServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVerificationServiceClient(cc grpc.ClientConnInterface) VerificationServiceClient {
	return &verificationServiceClient{cc}
}

func (c *verificationServiceClient) GetDraft(ctx context.Context, in *GetDraftRequest, opts ...grpc.CallOption) (*GetDraftResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDraftResponse)
	err := c.cc.Invoke(ctx, VerificationService_GetDraft_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *verificationServiceClient) AnalyzeDraft(ctx context.Context, in *AnalyzeDraftRequest, opts ...grpc.CallOption) (*AnalyzeDraftResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AnalyzeDraftResponse)
	err := c.cc.Invoke(ctx, VerificationService_AnalyzeDraft_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *verificationServiceClient) CommitRecord(ctx context.Context, in *CommitRecordRequest, opts ...grpc.CallOption) (*CommitRecordResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CommitRecordResponse)
	err := c.cc.Invoke(ctx, VerificationService_CommitRecord_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// VerificationServiceServer is the server API for VerificationService service.
// All implementations must embed UnimplementedVerificationServiceServer
// for forward compatibility.
//
// VerificationService reconciles a structured-data draft with the user and
// commits the final typed record.
type VerificationServiceServer interface {
	// GetDraft returns the persisted draft of a TO_VERIFY extraction as the
	// starting working object for a verification session.
	GetDraft(context.Context, *GetDraftRequest) (*GetDraftResponse, error)
	// AnalyzeDraft reviews the client's working object against the original
	// text and returns field-addressed corrections. Non-mutating.
	AnalyzeDraft(context.Context, *AnalyzeDraftRequest) (*AnalyzeDraftResponse, error)
	// CommitRecord validates and persists the working object as a typed record
	// and marks the extraction PROCESSED. Atomic.
	CommitRecord(context.Context, *CommitRecordRequest) (*CommitRecordResponse, error)
	mustEmbedUnimplementedVerificationServiceServer()
}

// UnimplementedVerificationServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedVerificationServiceServer struct{}

func (UnimplementedVerificationServiceServer) GetDraft(context.Context, *GetDraftRequest) (*GetDraftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDraft not implemented")
}
func (UnimplementedVerificationServiceServer) AnalyzeDraft(context.Context, *AnalyzeDraftRequest) (*AnalyzeDraftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AnalyzeDraft not implemented")
}
func (UnimplementedVerificationServiceServer) CommitRecord(context.Context, *CommitRecordRequest) (*CommitRecordResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CommitRecord not implemented")
}
func (UnimplementedVerificationServiceServer) mustEmbedUnimplementedVerificationServiceServer() {}
func (UnimplementedVerificationServiceServer) testEmbeddedByValue()                             {}

// UnsafeVerificationServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to VerificationServiceServer will
// result in compilation errors.
type UnsafeVerificationServiceServer interface {
	mustEmbedUnimplementedVerificationServiceServer()
}

func RegisterVerificationServiceServer(s grpc.ServiceRegistrar, srv VerificationServiceServer) {
	// If the following call panics, it indicates UnimplementedVerificationServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&VerificationService_ServiceDesc, srv)
}

func _VerificationService_GetDraft_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDraftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerificationServiceServer).GetDraft(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VerificationService_GetDraft_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VerificationServiceServer).GetDraft(ctx, req.(*GetDraftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VerificationService_AnalyzeDraft_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeDraftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerificationServiceServer).AnalyzeDraft(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VerificationService_AnalyzeDraft_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VerificationServiceServer).AnalyzeDraft(ctx, req.(*AnalyzeDraftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VerificationService_CommitRecord_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommitRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerificationServiceServer).CommitRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VerificationService_CommitRecord_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VerificationServiceServer).CommitRecord(ctx, req.(*CommitRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// VerificationService_ServiceDesc is the grpc.ServiceDesc for VerificationService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var VerificationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "structurizer.v1.VerificationService",
	HandlerType: (*VerificationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetDraft",
			Handler:    _VerificationService_GetDraft_Handler,
		},
		{
			MethodName: "AnalyzeDraft",
			Handler:    _VerificationService_AnalyzeDraft_Handler,
		},
		{
			MethodName: "CommitRecord",
			Handler:    _VerificationService_CommitRecord_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "structurizer/v1/structurizer.proto",
}

const (
	ExportService_ExportRecords_FullMethodName = "/structurizer.v1.ExportService/ExportRecords"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExportService produces XLSX workbooks from committed records.
type ExportServiceClient interface {
	ExportRecords(ctx context.Context, in *ExportRecordsRequest, opts ...grpc.CallOption) (*ExportRecordsResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportRecords(ctx context.Context, in *ExportRecordsRequest, opts ...grpc.CallOption) (*ExportRecordsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportRecordsResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportRecords_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
//
// ExportService produces XLSX workbooks from committed records.
type ExportServiceServer interface {
	ExportRecords(context.Context, *ExportRecordsRequest) (*ExportRecordsResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportRecords(context.Context, *ExportRecordsRequest) (*ExportRecordsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportRecords not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call panics, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportRecordsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportRecords_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportRecords(ctx, req.(*ExportRecordsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "structurizer.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportRecords",
			Handler:    _ExportService_ExportRecords_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "structurizer/v1/structurizer.proto",
}
