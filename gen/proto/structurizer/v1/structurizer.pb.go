// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: structurizer/v1/structurizer.proto

package structurizerpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Extraction struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	FilePath      string                 `protobuf:"bytes,4,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	Category      string                 `protobuf:"bytes,6,opt,name=category,proto3" json:"category,omitempty"`                 // empty until TO_VERIFY
	Text          string                 `protobuf:"bytes,7,opt,name=text,proto3" json:"text,omitempty"`                         // empty until TO_EXTRACT
	DataJson      string                 `protobuf:"bytes,8,opt,name=data_json,json=dataJson,proto3" json:"data_json,omitempty"` // draft, then final object once PROCESSED
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Extraction) Reset() {
	*x = Extraction{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Extraction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Extraction) ProtoMessage() {}

func (x *Extraction) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Extraction.ProtoReflect.Descriptor instead.
func (*Extraction) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{0}
}

func (x *Extraction) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Extraction) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Extraction) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Extraction) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *Extraction) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Extraction) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Extraction) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *Extraction) GetDataJson() string {
	if x != nil {
		return x.DataJson
	}
	return ""
}

func (x *Extraction) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Extraction) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{1}
}

func (x *UploadDocumentRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Extraction    *Extraction            `protobuf:"bytes,1,opt,name=extraction,proto3" json:"extraction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{2}
}

func (x *UploadDocumentResponse) GetExtraction() *Extraction {
	if x != nil {
		return x.Extraction
	}
	return nil
}

type ListExtractionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExtractionsRequest) Reset() {
	*x = ListExtractionsRequest{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExtractionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExtractionsRequest) ProtoMessage() {}

func (x *ListExtractionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExtractionsRequest.ProtoReflect.Descriptor instead.
func (*ListExtractionsRequest) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{3}
}

func (x *ListExtractionsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ListExtractionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Extractions   []*Extraction          `protobuf:"bytes,1,rep,name=extractions,proto3" json:"extractions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExtractionsResponse) Reset() {
	*x = ListExtractionsResponse{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExtractionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExtractionsResponse) ProtoMessage() {}

func (x *ListExtractionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExtractionsResponse.ProtoReflect.Descriptor instead.
func (*ListExtractionsResponse) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{4}
}

func (x *ListExtractionsResponse) GetExtractions() []*Extraction {
	if x != nil {
		return x.Extractions
	}
	return nil
}

type GetExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractionRequest) Reset() {
	*x = GetExtractionRequest{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractionRequest) ProtoMessage() {}

func (x *GetExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractionRequest.ProtoReflect.Descriptor instead.
func (*GetExtractionRequest) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{5}
}

func (x *GetExtractionRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Extraction    *Extraction            `protobuf:"bytes,1,opt,name=extraction,proto3" json:"extraction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractionResponse) Reset() {
	*x = GetExtractionResponse{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractionResponse) ProtoMessage() {}

func (x *GetExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractionResponse.ProtoReflect.Descriptor instead.
func (*GetExtractionResponse) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{6}
}

func (x *GetExtractionResponse) GetExtraction() *Extraction {
	if x != nil {
		return x.Extraction
	}
	return nil
}

type DeleteExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteExtractionRequest) Reset() {
	*x = DeleteExtractionRequest{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteExtractionRequest) ProtoMessage() {}

func (x *DeleteExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteExtractionRequest.ProtoReflect.Descriptor instead.
func (*DeleteExtractionRequest) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{7}
}

func (x *DeleteExtractionRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteExtractionResponse) Reset() {
	*x = DeleteExtractionResponse{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteExtractionResponse) ProtoMessage() {}

func (x *DeleteExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteExtractionResponse.ProtoReflect.Descriptor instead.
func (*DeleteExtractionResponse) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{8}
}

type RecognizeTextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecognizeTextRequest) Reset() {
	*x = RecognizeTextRequest{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecognizeTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecognizeTextRequest) ProtoMessage() {}

func (x *RecognizeTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecognizeTextRequest.ProtoReflect.Descriptor instead.
func (*RecognizeTextRequest) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{9}
}

func (x *RecognizeTextRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type RecognizeTextResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecognizeTextResponse) Reset() {
	*x = RecognizeTextResponse{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecognizeTextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecognizeTextResponse) ProtoMessage() {}

func (x *RecognizeTextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecognizeTextResponse.ProtoReflect.Descriptor instead.
func (*RecognizeTextResponse) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{10}
}

func (x *RecognizeTextResponse) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type ConfirmTextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Text          string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmTextRequest) Reset() {
	*x = ConfirmTextRequest{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmTextRequest) ProtoMessage() {}

func (x *ConfirmTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmTextRequest.ProtoReflect.Descriptor instead.
func (*ConfirmTextRequest) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{11}
}

func (x *ConfirmTextRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ConfirmTextRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type ConfirmTextResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Extraction    *Extraction            `protobuf:"bytes,1,opt,name=extraction,proto3" json:"extraction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmTextResponse) Reset() {
	*x = ConfirmTextResponse{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmTextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmTextResponse) ProtoMessage() {}

func (x *ConfirmTextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmTextResponse.ProtoReflect.Descriptor instead.
func (*ConfirmTextResponse) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{12}
}

func (x *ConfirmTextResponse) GetExtraction() *Extraction {
	if x != nil {
		return x.Extraction
	}
	return nil
}

type ClassifyDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClassifyDocumentRequest) Reset() {
	*x = ClassifyDocumentRequest{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClassifyDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClassifyDocumentRequest) ProtoMessage() {}

func (x *ClassifyDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClassifyDocumentRequest.ProtoReflect.Descriptor instead.
func (*ClassifyDocumentRequest) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{13}
}

func (x *ClassifyDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ClassifyDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`                 // canonical category, possibly the "other" sentinel
	RawLabel      string                 `protobuf:"bytes,2,opt,name=raw_label,json=rawLabel,proto3" json:"raw_label,omitempty"` // what the model actually said
	Confidence    float32                `protobuf:"fixed32,3,opt,name=confidence,proto3" json:"confidence,omitempty"`           // 0-100
	Forced        bool                   `protobuf:"varint,4,opt,name=forced,proto3" json:"forced,omitempty"`                    // true when the suggestion fell back to "other"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClassifyDocumentResponse) Reset() {
	*x = ClassifyDocumentResponse{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClassifyDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClassifyDocumentResponse) ProtoMessage() {}

func (x *ClassifyDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClassifyDocumentResponse.ProtoReflect.Descriptor instead.
func (*ClassifyDocumentResponse) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{14}
}

func (x *ClassifyDocumentResponse) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ClassifyDocumentResponse) GetRawLabel() string {
	if x != nil {
		return x.RawLabel
	}
	return ""
}

func (x *ClassifyDocumentResponse) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ClassifyDocumentResponse) GetForced() bool {
	if x != nil {
		return x.Forced
	}
	return false
}

type StructureDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StructureDocumentRequest) Reset() {
	*x = StructureDocumentRequest{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StructureDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StructureDocumentRequest) ProtoMessage() {}

func (x *StructureDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StructureDocumentRequest.ProtoReflect.Descriptor instead.
func (*StructureDocumentRequest) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{15}
}

func (x *StructureDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *StructureDocumentRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type StructureDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DraftJson     string                 `protobuf:"bytes,1,opt,name=draft_json,json=draftJson,proto3" json:"draft_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StructureDocumentResponse) Reset() {
	*x = StructureDocumentResponse{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StructureDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StructureDocumentResponse) ProtoMessage() {}

func (x *StructureDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StructureDocumentResponse.ProtoReflect.Descriptor instead.
func (*StructureDocumentResponse) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{16}
}

func (x *StructureDocumentResponse) GetDraftJson() string {
	if x != nil {
		return x.DraftJson
	}
	return ""
}

type ConfirmStructuredRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	DraftJson     string                 `protobuf:"bytes,3,opt,name=draft_json,json=draftJson,proto3" json:"draft_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmStructuredRequest) Reset() {
	*x = ConfirmStructuredRequest{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmStructuredRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmStructuredRequest) ProtoMessage() {}

func (x *ConfirmStructuredRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmStructuredRequest.ProtoReflect.Descriptor instead.
func (*ConfirmStructuredRequest) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{17}
}

func (x *ConfirmStructuredRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ConfirmStructuredRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ConfirmStructuredRequest) GetDraftJson() string {
	if x != nil {
		return x.DraftJson
	}
	return ""
}

type ConfirmStructuredResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Extraction    *Extraction            `protobuf:"bytes,1,opt,name=extraction,proto3" json:"extraction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmStructuredResponse) Reset() {
	*x = ConfirmStructuredResponse{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmStructuredResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmStructuredResponse) ProtoMessage() {}

func (x *ConfirmStructuredResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmStructuredResponse.ProtoReflect.Descriptor instead.
func (*ConfirmStructuredResponse) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{18}
}

func (x *ConfirmStructuredResponse) GetExtraction() *Extraction {
	if x != nil {
		return x.Extraction
	}
	return nil
}

type GetDraftRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDraftRequest) Reset() {
	*x = GetDraftRequest{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDraftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDraftRequest) ProtoMessage() {}

func (x *GetDraftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDraftRequest.ProtoReflect.Descriptor instead.
func (*GetDraftRequest) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{19}
}

func (x *GetDraftRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetDraftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	WorkingJson   string                 `protobuf:"bytes,2,opt,name=working_json,json=workingJson,proto3" json:"working_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDraftResponse) Reset() {
	*x = GetDraftResponse{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDraftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDraftResponse) ProtoMessage() {}

func (x *GetDraftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDraftResponse.ProtoReflect.Descriptor instead.
func (*GetDraftResponse) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{20}
}

func (x *GetDraftResponse) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *GetDraftResponse) GetWorkingJson() string {
	if x != nil {
		return x.WorkingJson
	}
	return ""
}

type Correction struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         string                 `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`                             // fully-indexed path, e.g. "items[2].amount"
	FieldGroup    string                 `protobuf:"bytes,2,opt,name=field_group,json=fieldGroup,proto3" json:"field_group,omitempty"` // index-stripped path, e.g. "items"
	Issue         string                 `protobuf:"bytes,3,opt,name=issue,proto3" json:"issue,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	Suggestion    string                 `protobuf:"bytes,5,opt,name=suggestion,proto3" json:"suggestion,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Correction) Reset() {
	*x = Correction{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Correction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Correction) ProtoMessage() {}

func (x *Correction) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Correction.ProtoReflect.Descriptor instead.
func (*Correction) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{21}
}

func (x *Correction) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *Correction) GetFieldGroup() string {
	if x != nil {
		return x.FieldGroup
	}
	return ""
}

func (x *Correction) GetIssue() string {
	if x != nil {
		return x.Issue
	}
	return ""
}

func (x *Correction) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Correction) GetSuggestion() string {
	if x != nil {
		return x.Suggestion
	}
	return ""
}

type AnalyzeDraftRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	WorkingJson   string                 `protobuf:"bytes,2,opt,name=working_json,json=workingJson,proto3" json:"working_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeDraftRequest) Reset() {
	*x = AnalyzeDraftRequest{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeDraftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeDraftRequest) ProtoMessage() {}

func (x *AnalyzeDraftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeDraftRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeDraftRequest) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{22}
}

func (x *AnalyzeDraftRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *AnalyzeDraftRequest) GetWorkingJson() string {
	if x != nil {
		return x.WorkingJson
	}
	return ""
}

type AnalyzeDraftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Corrections   []*Correction          `protobuf:"bytes,1,rep,name=corrections,proto3" json:"corrections,omitempty"`
	Narrative     string                 `protobuf:"bytes,2,opt,name=narrative,proto3" json:"narrative,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeDraftResponse) Reset() {
	*x = AnalyzeDraftResponse{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeDraftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeDraftResponse) ProtoMessage() {}

func (x *AnalyzeDraftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeDraftResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeDraftResponse) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{23}
}

func (x *AnalyzeDraftResponse) GetCorrections() []*Correction {
	if x != nil {
		return x.Corrections
	}
	return nil
}

func (x *AnalyzeDraftResponse) GetNarrative() string {
	if x != nil {
		return x.Narrative
	}
	return ""
}

type CommitRecordRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	WorkingJson   string                 `protobuf:"bytes,2,opt,name=working_json,json=workingJson,proto3" json:"working_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitRecordRequest) Reset() {
	*x = CommitRecordRequest{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitRecordRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitRecordRequest) ProtoMessage() {}

func (x *CommitRecordRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitRecordRequest.ProtoReflect.Descriptor instead.
func (*CommitRecordRequest) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{24}
}

func (x *CommitRecordRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CommitRecordRequest) GetWorkingJson() string {
	if x != nil {
		return x.WorkingJson
	}
	return ""
}

type CommitRecordResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	RecordId      string                 `protobuf:"bytes,2,opt,name=record_id,json=recordId,proto3" json:"record_id,omitempty"`
	RecordJson    string                 `protobuf:"bytes,3,opt,name=record_json,json=recordJson,proto3" json:"record_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitRecordResponse) Reset() {
	*x = CommitRecordResponse{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitRecordResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitRecordResponse) ProtoMessage() {}

func (x *CommitRecordResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitRecordResponse.ProtoReflect.Descriptor instead.
func (*CommitRecordResponse) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{25}
}

func (x *CommitRecordResponse) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CommitRecordResponse) GetRecordId() string {
	if x != nil {
		return x.RecordId
	}
	return ""
}

func (x *CommitRecordResponse) GetRecordJson() string {
	if x != nil {
		return x.RecordJson
	}
	return ""
}

type ExportRecordsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	FromDate      string                 `protobuf:"bytes,3,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,4,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportRecordsRequest) Reset() {
	*x = ExportRecordsRequest{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportRecordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportRecordsRequest) ProtoMessage() {}

func (x *ExportRecordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportRecordsRequest.ProtoReflect.Descriptor instead.
func (*ExportRecordsRequest) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{26}
}

func (x *ExportRecordsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ExportRecordsRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ExportRecordsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportRecordsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportRecordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportRecordsResponse) Reset() {
	*x = ExportRecordsResponse{}
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportRecordsResponse) ProtoMessage() {}

func (x *ExportRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structurizer_v1_structurizer_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportRecordsResponse.ProtoReflect.Descriptor instead.
func (*ExportRecordsResponse) Descriptor() ([]byte, []int) {
	return file_structurizer_v1_structurizer_proto_rawDescGZIP(), []int{27}
}

func (x *ExportRecordsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportRecordsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_structurizer_v1_structurizer_proto protoreflect.FileDescriptor

const file_structurizer_v1_structurizer_proto_rawDesc = "" +
	"\n" +
	"\"structurizer/v1/structurizer.proto\x12\x0fstructurizer.v1\"\x91\x02\n" +
	"\n" +
	"Extraction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x1b\n" +
	"\tfile_path\x18\x04 \x01(\tR\bfilePath\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1a\n" +
	"\bcategory\x18\x06 \x01(\tR\bcategory\x12\x12\n" +
	"\x04text\x18\a \x01(\tR\x04text\x12\x1b\n" +
	"\tdata_json\x18\b \x01(\tR\bdataJson\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"f\n" +
	"\x15UploadDocumentRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"U\n" +
	"\x16UploadDocumentResponse\x12;\n" +
	"\n" +
	"extraction\x18\x01 \x01(\v2\x1b.structurizer.v1.ExtractionR\n" +
	"extraction\"1\n" +
	"\x16ListExtractionsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"X\n" +
	"\x17ListExtractionsResponse\x12=\n" +
	"\vextractions\x18\x01 \x03(\v2\x1b.structurizer.v1.ExtractionR\vextractions\"&\n" +
	"\x14GetExtractionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"T\n" +
	"\x15GetExtractionResponse\x12;\n" +
	"\n" +
	"extraction\x18\x01 \x01(\v2\x1b.structurizer.v1.ExtractionR\n" +
	"extraction\")\n" +
	"\x17DeleteExtractionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x1a\n" +
	"\x18DeleteExtractionResponse\"&\n" +
	"\x14RecognizeTextRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"+\n" +
	"\x15RecognizeTextResponse\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\"8\n" +
	"\x12ConfirmTextRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\"R\n" +
	"\x13ConfirmTextResponse\x12;\n" +
	"\n" +
	"extraction\x18\x01 \x01(\v2\x1b.structurizer.v1.ExtractionR\n" +
	"extraction\")\n" +
	"\x17ClassifyDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x8b\x01\n" +
	"\x18ClassifyDocumentResponse\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x1b\n" +
	"\traw_label\x18\x02 \x01(\tR\brawLabel\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x02R\n" +
	"confidence\x12\x16\n" +
	"\x06forced\x18\x04 \x01(\bR\x06forced\"F\n" +
	"\x18StructureDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\":\n" +
	"\x19StructureDocumentResponse\x12\x1d\n" +
	"\n" +
	"draft_json\x18\x01 \x01(\tR\tdraftJson\"e\n" +
	"\x18ConfirmStructuredRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x1d\n" +
	"\n" +
	"draft_json\x18\x03 \x01(\tR\tdraftJson\"X\n" +
	"\x19ConfirmStructuredResponse\x12;\n" +
	"\n" +
	"extraction\x18\x01 \x01(\v2\x1b.structurizer.v1.ExtractionR\n" +
	"extraction\"!\n" +
	"\x0fGetDraftRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"Q\n" +
	"\x10GetDraftResponse\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12!\n" +
	"\fworking_json\x18\x02 \x01(\tR\vworkingJson\"\x9b\x01\n" +
	"\n" +
	"Correction\x12\x14\n" +
	"\x05field\x18\x01 \x01(\tR\x05field\x12\x1f\n" +
	"\vfield_group\x18\x02 \x01(\tR\n" +
	"fieldGroup\x12\x14\n" +
	"\x05issue\x18\x03 \x01(\tR\x05issue\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x1e\n" +
	"\n" +
	"suggestion\x18\x05 \x01(\tR\n" +
	"suggestion\"H\n" +
	"\x13AnalyzeDraftRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fworking_json\x18\x02 \x01(\tR\vworkingJson\"s\n" +
	"\x14AnalyzeDraftResponse\x12=\n" +
	"\vcorrections\x18\x01 \x03(\v2\x1b.structurizer.v1.CorrectionR\vcorrections\x12\x1c\n" +
	"\tnarrative\x18\x02 \x01(\tR\tnarrative\"H\n" +
	"\x13CommitRecordRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fworking_json\x18\x02 \x01(\tR\vworkingJson\"p\n" +
	"\x14CommitRecordResponse\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x1b\n" +
	"\trecord_id\x18\x02 \x01(\tR\brecordId\x12\x1f\n" +
	"\vrecord_json\x18\x03 \x01(\tR\n" +
	"recordJson\"\x81\x01\n" +
	"\x14ExportRecordsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x1b\n" +
	"\tfrom_date\x18\x03 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x04 \x01(\tR\x06toDate\"G\n" +
	"\x15ExportRecordsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xa0\a\n" +
	"\x11ExtractionService\x12a\n" +
	"\x0eUploadDocument\x12&.structurizer.v1.UploadDocumentRequest\x1a'.structurizer.v1.UploadDocumentResponse\x12d\n" +
	"\x0fListExtractions\x12'.structurizer.v1.ListExtractionsRequest\x1a(.structurizer.v1.ListExtractionsResponse\x12^\n" +
	"\rGetExtraction\x12%.structurizer.v1.GetExtractionRequest\x1a&.structurizer.v1.GetExtractionResponse\x12g\n" +
	"\x10DeleteExtraction\x12(.structurizer.v1.DeleteExtractionRequest\x1a).structurizer.v1.DeleteExtractionResponse\x12^\n" +
	"\rRecognizeText\x12%.structurizer.v1.RecognizeTextRequest\x1a&.structurizer.v1.RecognizeTextResponse\x12X\n" +
	"\vConfirmText\x12#.structurizer.v1.ConfirmTextRequest\x1a$.structurizer.v1.ConfirmTextResponse\x12g\n" +
	"\x10ClassifyDocument\x12(.structurizer.v1.ClassifyDocumentRequest\x1a).structurizer.v1.ClassifyDocumentResponse\x12j\n" +
	"\x11StructureDocument\x12).structurizer.v1.StructureDocumentRequest\x1a*.structurizer.v1.StructureDocumentResponse\x12j\n" +
	"\x11ConfirmStructured\x12).structurizer.v1.ConfirmStructuredRequest\x1a*.structurizer.v1.ConfirmStructuredResponse2\xa0\x02\n" +
	"\x13VerificationService\x12O\n" +
	"\bGetDraft\x12 .structurizer.v1.GetDraftRequest\x1a!.structurizer.v1.GetDraftResponse\x12[\n" +
	"\fAnalyzeDraft\x12$.structurizer.v1.AnalyzeDraftRequest\x1a%.structurizer.v1.AnalyzeDraftResponse\x12[\n" +
	"\fCommitRecord\x12$.structurizer.v1.CommitRecordRequest\x1a%.structurizer.v1.CommitRecordResponse2o\n" +
	"\rExportService\x12^\n" +
	"\rExportRecords\x12%.structurizer.v1.ExportRecordsRequest\x1a&.structurizer.v1.ExportRecordsResponseBQZOgithub.com/Lazzzer/structurizer-sub000/gen/proto/structurizer/v1;structurizerpbb\x06proto3"

var (
	file_structurizer_v1_structurizer_proto_rawDescOnce sync.Once
	file_structurizer_v1_structurizer_proto_rawDescData []byte
)

func file_structurizer_v1_structurizer_proto_rawDescGZIP() []byte {
	file_structurizer_v1_structurizer_proto_rawDescOnce.Do(func() {
		file_structurizer_v1_structurizer_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_structurizer_v1_structurizer_proto_rawDesc), len(file_structurizer_v1_structurizer_proto_rawDesc)))
	})
	return file_structurizer_v1_structurizer_proto_rawDescData
}

var file_structurizer_v1_structurizer_proto_msgTypes = make([]protoimpl.MessageInfo, 28)
var file_structurizer_v1_structurizer_proto_goTypes = []any{
	(*Extraction)(nil),                // 0: structurizer.v1.Extraction
	(*UploadDocumentRequest)(nil),     // 1: structurizer.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),    // 2: structurizer.v1.UploadDocumentResponse
	(*ListExtractionsRequest)(nil),    // 3: structurizer.v1.ListExtractionsRequest
	(*ListExtractionsResponse)(nil),   // 4: structurizer.v1.ListExtractionsResponse
	(*GetExtractionRequest)(nil),      // 5: structurizer.v1.GetExtractionRequest
	(*GetExtractionResponse)(nil),     // 6: structurizer.v1.GetExtractionResponse
	(*DeleteExtractionRequest)(nil),   // 7: structurizer.v1.DeleteExtractionRequest
	(*DeleteExtractionResponse)(nil),  // 8: structurizer.v1.DeleteExtractionResponse
	(*RecognizeTextRequest)(nil),      // 9: structurizer.v1.RecognizeTextRequest
	(*RecognizeTextResponse)(nil),     // 10: structurizer.v1.RecognizeTextResponse
	(*ConfirmTextRequest)(nil),        // 11: structurizer.v1.ConfirmTextRequest
	(*ConfirmTextResponse)(nil),       // 12: structurizer.v1.ConfirmTextResponse
	(*ClassifyDocumentRequest)(nil),   // 13: structurizer.v1.ClassifyDocumentRequest
	(*ClassifyDocumentResponse)(nil),  // 14: structurizer.v1.ClassifyDocumentResponse
	(*StructureDocumentRequest)(nil),  // 15: structurizer.v1.StructureDocumentRequest
	(*StructureDocumentResponse)(nil), // 16: structurizer.v1.StructureDocumentResponse
	(*ConfirmStructuredRequest)(nil),  // 17: structurizer.v1.ConfirmStructuredRequest
	(*ConfirmStructuredResponse)(nil), // 18: structurizer.v1.ConfirmStructuredResponse
	(*GetDraftRequest)(nil),           // 19: structurizer.v1.GetDraftRequest
	(*GetDraftResponse)(nil),          // 20: structurizer.v1.GetDraftResponse
	(*Correction)(nil),                // 21: structurizer.v1.Correction
	(*AnalyzeDraftRequest)(nil),       // 22: structurizer.v1.AnalyzeDraftRequest
	(*AnalyzeDraftResponse)(nil),      // 23: structurizer.v1.AnalyzeDraftResponse
	(*CommitRecordRequest)(nil),       // 24: structurizer.v1.CommitRecordRequest
	(*CommitRecordResponse)(nil),      // 25: structurizer.v1.CommitRecordResponse
	(*ExportRecordsRequest)(nil),      // 26: structurizer.v1.ExportRecordsRequest
	(*ExportRecordsResponse)(nil),     // 27: structurizer.v1.ExportRecordsResponse
}
var file_structurizer_v1_structurizer_proto_depIdxs = []int32{
	0,  // 0: structurizer.v1.UploadDocumentResponse.extraction:type_name -> structurizer.v1.Extraction
	0,  // 1: structurizer.v1.ListExtractionsResponse.extractions:type_name -> structurizer.v1.Extraction
	0,  // 2: structurizer.v1.GetExtractionResponse.extraction:type_name -> structurizer.v1.Extraction
	0,  // 3: structurizer.v1.ConfirmTextResponse.extraction:type_name -> structurizer.v1.Extraction
	0,  // 4: structurizer.v1.ConfirmStructuredResponse.extraction:type_name -> structurizer.v1.Extraction
	21, // 5: structurizer.v1.AnalyzeDraftResponse.corrections:type_name -> structurizer.v1.Correction
	1,  // 6: structurizer.v1.ExtractionService.UploadDocument:input_type -> structurizer.v1.UploadDocumentRequest
	3,  // 7: structurizer.v1.ExtractionService.ListExtractions:input_type -> structurizer.v1.ListExtractionsRequest
	5,  // 8: structurizer.v1.ExtractionService.GetExtraction:input_type -> structurizer.v1.GetExtractionRequest
	7,  // 9: structurizer.v1.ExtractionService.DeleteExtraction:input_type -> structurizer.v1.DeleteExtractionRequest
	9,  // 10: structurizer.v1.ExtractionService.RecognizeText:input_type -> structurizer.v1.RecognizeTextRequest
	11, // 11: structurizer.v1.ExtractionService.ConfirmText:input_type -> structurizer.v1.ConfirmTextRequest
	13, // 12: structurizer.v1.ExtractionService.ClassifyDocument:input_type -> structurizer.v1.ClassifyDocumentRequest
	15, // 13: structurizer.v1.ExtractionService.StructureDocument:input_type -> structurizer.v1.StructureDocumentRequest
	17, // 14: structurizer.v1.ExtractionService.ConfirmStructured:input_type -> structurizer.v1.ConfirmStructuredRequest
	19, // 15: structurizer.v1.VerificationService.GetDraft:input_type -> structurizer.v1.GetDraftRequest
	22, // 16: structurizer.v1.VerificationService.AnalyzeDraft:input_type -> structurizer.v1.AnalyzeDraftRequest
	24, // 17: structurizer.v1.VerificationService.CommitRecord:input_type -> structurizer.v1.CommitRecordRequest
	26, // 18: structurizer.v1.ExportService.ExportRecords:input_type -> structurizer.v1.ExportRecordsRequest
	2,  // 19: structurizer.v1.ExtractionService.UploadDocument:output_type -> structurizer.v1.UploadDocumentResponse
	4,  // 20: structurizer.v1.ExtractionService.ListExtractions:output_type -> structurizer.v1.ListExtractionsResponse
	6,  // 21: structurizer.v1.ExtractionService.GetExtraction:output_type -> structurizer.v1.GetExtractionResponse
	8,  // 22: structurizer.v1.ExtractionService.DeleteExtraction:output_type -> structurizer.v1.DeleteExtractionResponse
	10, // 23: structurizer.v1.ExtractionService.RecognizeText:output_type -> structurizer.v1.RecognizeTextResponse
	12, // 24: structurizer.v1.ExtractionService.ConfirmText:output_type -> structurizer.v1.ConfirmTextResponse
	14, // 25: structurizer.v1.ExtractionService.ClassifyDocument:output_type -> structurizer.v1.ClassifyDocumentResponse
	16, // 26: structurizer.v1.ExtractionService.StructureDocument:output_type -> structurizer.v1.StructureDocumentResponse
	18, // 27: structurizer.v1.ExtractionService.ConfirmStructured:output_type -> structurizer.v1.ConfirmStructuredResponse
	20, // 28: structurizer.v1.VerificationService.GetDraft:output_type -> structurizer.v1.GetDraftResponse
	23, // 29: structurizer.v1.VerificationService.AnalyzeDraft:output_type -> structurizer.v1.AnalyzeDraftResponse
	25, // 30: structurizer.v1.VerificationService.CommitRecord:output_type -> structurizer.v1.CommitRecordResponse
	27, // 31: structurizer.v1.ExportService.ExportRecords:output_type -> structurizer.v1.ExportRecordsResponse
	19, // [19:32] is the sub-list for method output_type
	6,  // [6:19] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_structurizer_v1_structurizer_proto_init() }
func file_structurizer_v1_structurizer_proto_init() {
	if File_structurizer_v1_structurizer_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_structurizer_v1_structurizer_proto_rawDesc), len(file_structurizer_v1_structurizer_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   28,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_structurizer_v1_structurizer_proto_goTypes,
		DependencyIndexes: file_structurizer_v1_structurizer_proto_depIdxs,
		MessageInfos:      file_structurizer_v1_structurizer_proto_msgTypes,
	}.Build()
	File_structurizer_v1_structurizer_proto = out.File
	file_structurizer_v1_structurizer_proto_goTypes = nil
	file_structurizer_v1_structurizer_proto_depIdxs = nil
}
