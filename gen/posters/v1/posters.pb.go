// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: posters.proto

package postersv1

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

type UploadPosterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Data          []byte                 `protobuf:"bytes,4,opt,name=data,proto3" json:"data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadPosterRequest) Reset() {
	*x = UploadPosterRequest{}
	mi := &file_posters_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadPosterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadPosterRequest) ProtoMessage() {}

func (x *UploadPosterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadPosterRequest.ProtoReflect.Descriptor instead.
func (*UploadPosterRequest) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{0}
}

func (x *UploadPosterRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UploadPosterRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *UploadPosterRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *UploadPosterRequest) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

type UploadPosterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadPosterResponse) Reset() {
	*x = UploadPosterResponse{}
	mi := &file_posters_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadPosterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadPosterResponse) ProtoMessage() {}

func (x *UploadPosterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadPosterResponse.ProtoReflect.Descriptor instead.
func (*UploadPosterResponse) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{1}
}

func (x *UploadPosterResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetExtractionJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractionJobRequest) Reset() {
	*x = GetExtractionJobRequest{}
	mi := &file_posters_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractionJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractionJobRequest) ProtoMessage() {}

func (x *GetExtractionJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractionJobRequest.ProtoReflect.Descriptor instead.
func (*GetExtractionJobRequest) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{2}
}

func (x *GetExtractionJobRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetExtractionJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetExtractionJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	PosterId      string                 `protobuf:"bytes,3,opt,name=poster_id,json=posterId,proto3" json:"poster_id,omitempty"` // empty until completed
	Error         string                 `protobuf:"bytes,4,opt,name=error,proto3" json:"error,omitempty"`                       // empty unless failed
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractionJobResponse) Reset() {
	*x = GetExtractionJobResponse{}
	mi := &file_posters_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractionJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractionJobResponse) ProtoMessage() {}

func (x *GetExtractionJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractionJobResponse.ProtoReflect.Descriptor instead.
func (*GetExtractionJobResponse) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{3}
}

func (x *GetExtractionJobResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *GetExtractionJobResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetExtractionJobResponse) GetPosterId() string {
	if x != nil {
		return x.PosterId
	}
	return ""
}

func (x *GetExtractionJobResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *GetExtractionJobResponse) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *GetExtractionJobResponse) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Poster struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Id          string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId      string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Title       string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Description string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	Status      string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	ImageUrl    string                 `protobuf:"bytes,6,opt,name=image_url,json=imageUrl,proto3" json:"image_url,omitempty"`
	CreatedAt   string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt   string                 `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	PublishedAt string                 `protobuf:"bytes,9,opt,name=published_at,json=publishedAt,proto3" json:"published_at,omitempty"`
	// The bibliographic record as a JSON document; persisted as opaque
	// structured blobs, so it crosses the API the same way.
	MetadataJson  []byte `protobuf:"bytes,10,opt,name=metadata_json,json=metadataJson,proto3" json:"metadata_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Poster) Reset() {
	*x = Poster{}
	mi := &file_posters_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Poster) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Poster) ProtoMessage() {}

func (x *Poster) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Poster.ProtoReflect.Descriptor instead.
func (*Poster) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{4}
}

func (x *Poster) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Poster) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Poster) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Poster) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Poster) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Poster) GetImageUrl() string {
	if x != nil {
		return x.ImageUrl
	}
	return ""
}

func (x *Poster) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Poster) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *Poster) GetPublishedAt() string {
	if x != nil {
		return x.PublishedAt
	}
	return ""
}

func (x *Poster) GetMetadataJson() []byte {
	if x != nil {
		return x.MetadataJson
	}
	return nil
}

type GetPosterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	PosterId      string                 `protobuf:"bytes,2,opt,name=poster_id,json=posterId,proto3" json:"poster_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPosterRequest) Reset() {
	*x = GetPosterRequest{}
	mi := &file_posters_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPosterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPosterRequest) ProtoMessage() {}

func (x *GetPosterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPosterRequest.ProtoReflect.Descriptor instead.
func (*GetPosterRequest) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{5}
}

func (x *GetPosterRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetPosterRequest) GetPosterId() string {
	if x != nil {
		return x.PosterId
	}
	return ""
}

type GetPosterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Poster        *Poster                `protobuf:"bytes,1,opt,name=poster,proto3" json:"poster,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPosterResponse) Reset() {
	*x = GetPosterResponse{}
	mi := &file_posters_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPosterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPosterResponse) ProtoMessage() {}

func (x *GetPosterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPosterResponse.ProtoReflect.Descriptor instead.
func (*GetPosterResponse) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{6}
}

func (x *GetPosterResponse) GetPoster() *Poster {
	if x != nil {
		return x.Poster
	}
	return nil
}

type ListPostersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPostersRequest) Reset() {
	*x = ListPostersRequest{}
	mi := &file_posters_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPostersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPostersRequest) ProtoMessage() {}

func (x *ListPostersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPostersRequest.ProtoReflect.Descriptor instead.
func (*ListPostersRequest) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{7}
}

func (x *ListPostersRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ListPostersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Posters       []*Poster              `protobuf:"bytes,1,rep,name=posters,proto3" json:"posters,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPostersResponse) Reset() {
	*x = ListPostersResponse{}
	mi := &file_posters_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPostersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPostersResponse) ProtoMessage() {}

func (x *ListPostersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPostersResponse.ProtoReflect.Descriptor instead.
func (*ListPostersResponse) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{8}
}

func (x *ListPostersResponse) GetPosters() []*Poster {
	if x != nil {
		return x.Posters
	}
	return nil
}

type UpdatePosterMetadataRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	PosterId      string                 `protobuf:"bytes,2,opt,name=poster_id,json=posterId,proto3" json:"poster_id,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	MetadataJson  []byte                 `protobuf:"bytes,5,opt,name=metadata_json,json=metadataJson,proto3" json:"metadata_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdatePosterMetadataRequest) Reset() {
	*x = UpdatePosterMetadataRequest{}
	mi := &file_posters_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePosterMetadataRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePosterMetadataRequest) ProtoMessage() {}

func (x *UpdatePosterMetadataRequest) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePosterMetadataRequest.ProtoReflect.Descriptor instead.
func (*UpdatePosterMetadataRequest) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{9}
}

func (x *UpdatePosterMetadataRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UpdatePosterMetadataRequest) GetPosterId() string {
	if x != nil {
		return x.PosterId
	}
	return ""
}

func (x *UpdatePosterMetadataRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *UpdatePosterMetadataRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *UpdatePosterMetadataRequest) GetMetadataJson() []byte {
	if x != nil {
		return x.MetadataJson
	}
	return nil
}

type UpdatePosterMetadataResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Poster        *Poster                `protobuf:"bytes,1,opt,name=poster,proto3" json:"poster,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdatePosterMetadataResponse) Reset() {
	*x = UpdatePosterMetadataResponse{}
	mi := &file_posters_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePosterMetadataResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePosterMetadataResponse) ProtoMessage() {}

func (x *UpdatePosterMetadataResponse) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePosterMetadataResponse.ProtoReflect.Descriptor instead.
func (*UpdatePosterMetadataResponse) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{10}
}

func (x *UpdatePosterMetadataResponse) GetPoster() *Poster {
	if x != nil {
		return x.Poster
	}
	return nil
}

type ExportPostersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportPostersRequest) Reset() {
	*x = ExportPostersRequest{}
	mi := &file_posters_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportPostersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportPostersRequest) ProtoMessage() {}

func (x *ExportPostersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportPostersRequest.ProtoReflect.Descriptor instead.
func (*ExportPostersRequest) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{11}
}

func (x *ExportPostersRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ExportPostersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportPostersResponse) Reset() {
	*x = ExportPostersResponse{}
	mi := &file_posters_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportPostersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportPostersResponse) ProtoMessage() {}

func (x *ExportPostersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportPostersResponse.ProtoReflect.Descriptor instead.
func (*ExportPostersResponse) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{12}
}

func (x *ExportPostersResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportPostersResponse) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

type DepositionSummary struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Title           string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	State           string                 `protobuf:"bytes,3,opt,name=state,proto3" json:"state,omitempty"`
	Submitted       bool                   `protobuf:"varint,4,opt,name=submitted,proto3" json:"submitted,omitempty"`
	ConceptRecordId string                 `protobuf:"bytes,5,opt,name=concept_record_id,json=conceptRecordId,proto3" json:"concept_record_id,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *DepositionSummary) Reset() {
	*x = DepositionSummary{}
	mi := &file_posters_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DepositionSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DepositionSummary) ProtoMessage() {}

func (x *DepositionSummary) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DepositionSummary.ProtoReflect.Descriptor instead.
func (*DepositionSummary) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{13}
}

func (x *DepositionSummary) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *DepositionSummary) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *DepositionSummary) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *DepositionSummary) GetSubmitted() bool {
	if x != nil {
		return x.Submitted
	}
	return false
}

func (x *DepositionSummary) GetConceptRecordId() string {
	if x != nil {
		return x.ConceptRecordId
	}
	return ""
}

type GetZenodoConnectionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	PosterId      string                 `protobuf:"bytes,2,opt,name=poster_id,json=posterId,proto3" json:"poster_id,omitempty"` // carried through OAuth state for post-login redirect
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetZenodoConnectionRequest) Reset() {
	*x = GetZenodoConnectionRequest{}
	mi := &file_posters_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetZenodoConnectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetZenodoConnectionRequest) ProtoMessage() {}

func (x *GetZenodoConnectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetZenodoConnectionRequest.ProtoReflect.Descriptor instead.
func (*GetZenodoConnectionRequest) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{14}
}

func (x *GetZenodoConnectionRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetZenodoConnectionRequest) GetPosterId() string {
	if x != nil {
		return x.PosterId
	}
	return ""
}

type GetZenodoConnectionResponse struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	LoginUrl            string                 `protobuf:"bytes,1,opt,name=login_url,json=loginUrl,proto3" json:"login_url,omitempty"`
	Connected           bool                   `protobuf:"varint,2,opt,name=connected,proto3" json:"connected,omitempty"`
	Message             string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	ExistingDepositions []*DepositionSummary   `protobuf:"bytes,4,rep,name=existing_depositions,json=existingDepositions,proto3" json:"existing_depositions,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *GetZenodoConnectionResponse) Reset() {
	*x = GetZenodoConnectionResponse{}
	mi := &file_posters_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetZenodoConnectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetZenodoConnectionResponse) ProtoMessage() {}

func (x *GetZenodoConnectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetZenodoConnectionResponse.ProtoReflect.Descriptor instead.
func (*GetZenodoConnectionResponse) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{15}
}

func (x *GetZenodoConnectionResponse) GetLoginUrl() string {
	if x != nil {
		return x.LoginUrl
	}
	return ""
}

func (x *GetZenodoConnectionResponse) GetConnected() bool {
	if x != nil {
		return x.Connected
	}
	return false
}

func (x *GetZenodoConnectionResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *GetZenodoConnectionResponse) GetExistingDepositions() []*DepositionSummary {
	if x != nil {
		return x.ExistingDepositions
	}
	return nil
}

type DisconnectZenodoRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DisconnectZenodoRequest) Reset() {
	*x = DisconnectZenodoRequest{}
	mi := &file_posters_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DisconnectZenodoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DisconnectZenodoRequest) ProtoMessage() {}

func (x *DisconnectZenodoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DisconnectZenodoRequest.ProtoReflect.Descriptor instead.
func (*DisconnectZenodoRequest) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{16}
}

func (x *DisconnectZenodoRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type DisconnectZenodoResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DisconnectZenodoResponse) Reset() {
	*x = DisconnectZenodoResponse{}
	mi := &file_posters_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DisconnectZenodoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DisconnectZenodoResponse) ProtoMessage() {}

func (x *DisconnectZenodoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DisconnectZenodoResponse.ProtoReflect.Descriptor instead.
func (*DisconnectZenodoResponse) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{17}
}

func (x *DisconnectZenodoResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type PublishPosterRequest struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	UserId               string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	PosterId             string                 `protobuf:"bytes,2,opt,name=poster_id,json=posterId,proto3" json:"poster_id,omitempty"`
	Mode                 string                 `protobuf:"bytes,3,opt,name=mode,proto3" json:"mode,omitempty"` // "new" or "existing"
	ExistingDepositionId int64                  `protobuf:"varint,4,opt,name=existing_deposition_id,json=existingDepositionId,proto3" json:"existing_deposition_id,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *PublishPosterRequest) Reset() {
	*x = PublishPosterRequest{}
	mi := &file_posters_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PublishPosterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PublishPosterRequest) ProtoMessage() {}

func (x *PublishPosterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PublishPosterRequest.ProtoReflect.Descriptor instead.
func (*PublishPosterRequest) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{18}
}

func (x *PublishPosterRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *PublishPosterRequest) GetPosterId() string {
	if x != nil {
		return x.PosterId
	}
	return ""
}

func (x *PublishPosterRequest) GetMode() string {
	if x != nil {
		return x.Mode
	}
	return ""
}

func (x *PublishPosterRequest) GetExistingDepositionId() int64 {
	if x != nil {
		return x.ExistingDepositionId
	}
	return 0
}

type PublishProgress struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Step          string                 `protobuf:"bytes,1,opt,name=step,proto3" json:"step,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"` // in_progress | completed | error
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	DataJson      []byte                 `protobuf:"bytes,4,opt,name=data_json,json=dataJson,proto3" json:"data_json,omitempty"` // terminal payload on the final "complete" event
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PublishProgress) Reset() {
	*x = PublishProgress{}
	mi := &file_posters_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PublishProgress) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PublishProgress) ProtoMessage() {}

func (x *PublishProgress) ProtoReflect() protoreflect.Message {
	mi := &file_posters_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PublishProgress.ProtoReflect.Descriptor instead.
func (*PublishProgress) Descriptor() ([]byte, []int) {
	return file_posters_proto_rawDescGZIP(), []int{19}
}

func (x *PublishProgress) GetStep() string {
	if x != nil {
		return x.Step
	}
	return ""
}

func (x *PublishProgress) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *PublishProgress) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *PublishProgress) GetDataJson() []byte {
	if x != nil {
		return x.DataJson
	}
	return nil
}

var File_posters_proto protoreflect.FileDescriptor

const file_posters_proto_rawDesc = "" +
	"\n" +
	"\rposters.proto\x12\n" +
	"posters.v1\"\x82\x01\n" +
	"\x13UploadPosterRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12\x12\n" +
	"\x04data\x18\x04 \x01(\fR\x04data\"-\n" +
	"\x14UploadPosterResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"I\n" +
	"\x17GetExtractionJobRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\"\xba\x01\n" +
	"\x18GetExtractionJobResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1b\n" +
	"\tposter_id\x18\x03 \x01(\tR\bposterId\x12\x14\n" +
	"\x05error\x18\x04 \x01(\tR\x05error\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"\xa4\x02\n" +
	"\x06Poster\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1b\n" +
	"\timage_url\x18\x06 \x01(\tR\bimageUrl\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\b \x01(\tR\tupdatedAt\x12!\n" +
	"\fpublished_at\x18\t \x01(\tR\vpublishedAt\x12#\n" +
	"\rmetadata_json\x18\n" +
	" \x01(\fR\fmetadataJson\"H\n" +
	"\x10GetPosterRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tposter_id\x18\x02 \x01(\tR\bposterId\"?\n" +
	"\x11GetPosterResponse\x12*\n" +
	"\x06poster\x18\x01 \x01(\v2\x12.posters.v1.PosterR\x06poster\"-\n" +
	"\x12ListPostersRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"C\n" +
	"\x13ListPostersResponse\x12,\n" +
	"\aposters\x18\x01 \x03(\v2\x12.posters.v1.PosterR\aposters\"\xb0\x01\n" +
	"\x1bUpdatePosterMetadataRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tposter_id\x18\x02 \x01(\tR\bposterId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12#\n" +
	"\rmetadata_json\x18\x05 \x01(\fR\fmetadataJson\"J\n" +
	"\x1cUpdatePosterMetadataResponse\x12*\n" +
	"\x06poster\x18\x01 \x01(\v2\x12.posters.v1.PosterR\x06poster\"/\n" +
	"\x14ExportPostersRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"H\n" +
	"\x15ExportPostersResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\"\x99\x01\n" +
	"\x11DepositionSummary\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x14\n" +
	"\x05state\x18\x03 \x01(\tR\x05state\x12\x1c\n" +
	"\tsubmitted\x18\x04 \x01(\bR\tsubmitted\x12*\n" +
	"\x11concept_record_id\x18\x05 \x01(\tR\x0fconceptRecordId\"R\n" +
	"\x1aGetZenodoConnectionRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tposter_id\x18\x02 \x01(\tR\bposterId\"\xc4\x01\n" +
	"\x1bGetZenodoConnectionResponse\x12\x1b\n" +
	"\tlogin_url\x18\x01 \x01(\tR\bloginUrl\x12\x1c\n" +
	"\tconnected\x18\x02 \x01(\bR\tconnected\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\x12P\n" +
	"\x14existing_depositions\x18\x04 \x03(\v2\x1d.posters.v1.DepositionSummaryR\x13existingDepositions\"2\n" +
	"\x17DisconnectZenodoRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"4\n" +
	"\x18DisconnectZenodoResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\"\x96\x01\n" +
	"\x14PublishPosterRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tposter_id\x18\x02 \x01(\tR\bposterId\x12\x12\n" +
	"\x04mode\x18\x03 \x01(\tR\x04mode\x124\n" +
	"\x16existing_deposition_id\x18\x04 \x01(\x03R\x14existingDepositionId\"t\n" +
	"\x0fPublishProgress\x12\x12\n" +
	"\x04step\x18\x01 \x01(\tR\x04step\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\x12\x1b\n" +
	"\tdata_json\x18\x04 \x01(\fR\bdataJson2\xb6\x06\n" +
	"\x0ePostersService\x12Q\n" +
	"\fUploadPoster\x12\x1f.posters.v1.UploadPosterRequest\x1a .posters.v1.UploadPosterResponse\x12]\n" +
	"\x10GetExtractionJob\x12#.posters.v1.GetExtractionJobRequest\x1a$.posters.v1.GetExtractionJobResponse\x12H\n" +
	"\tGetPoster\x12\x1c.posters.v1.GetPosterRequest\x1a\x1d.posters.v1.GetPosterResponse\x12N\n" +
	"\vListPosters\x12\x1e.posters.v1.ListPostersRequest\x1a\x1f.posters.v1.ListPostersResponse\x12i\n" +
	"\x14UpdatePosterMetadata\x12'.posters.v1.UpdatePosterMetadataRequest\x1a(.posters.v1.UpdatePosterMetadataResponse\x12T\n" +
	"\rExportPosters\x12 .posters.v1.ExportPostersRequest\x1a!.posters.v1.ExportPostersResponse\x12f\n" +
	"\x13GetZenodoConnection\x12&.posters.v1.GetZenodoConnectionRequest\x1a'.posters.v1.GetZenodoConnectionResponse\x12]\n" +
	"\x10DisconnectZenodo\x12#.posters.v1.DisconnectZenodoRequest\x1a$.posters.v1.DisconnectZenodoResponse\x12P\n" +
	"\rPublishPoster\x12 .posters.v1.PublishPosterRequest\x1a\x1b.posters.v1.PublishProgress0\x01BDZBgithub.com/posters-science/poster-tracker/gen/posters/v1;postersv1b\x06proto3"

var (
	file_posters_proto_rawDescOnce sync.Once
	file_posters_proto_rawDescData []byte
)

func file_posters_proto_rawDescGZIP() []byte {
	file_posters_proto_rawDescOnce.Do(func() {
		file_posters_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_posters_proto_rawDesc), len(file_posters_proto_rawDesc)))
	})
	return file_posters_proto_rawDescData
}

var file_posters_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_posters_proto_goTypes = []any{
	(*UploadPosterRequest)(nil),          // 0: posters.v1.UploadPosterRequest
	(*UploadPosterResponse)(nil),         // 1: posters.v1.UploadPosterResponse
	(*GetExtractionJobRequest)(nil),      // 2: posters.v1.GetExtractionJobRequest
	(*GetExtractionJobResponse)(nil),     // 3: posters.v1.GetExtractionJobResponse
	(*Poster)(nil),                       // 4: posters.v1.Poster
	(*GetPosterRequest)(nil),             // 5: posters.v1.GetPosterRequest
	(*GetPosterResponse)(nil),            // 6: posters.v1.GetPosterResponse
	(*ListPostersRequest)(nil),           // 7: posters.v1.ListPostersRequest
	(*ListPostersResponse)(nil),          // 8: posters.v1.ListPostersResponse
	(*UpdatePosterMetadataRequest)(nil),  // 9: posters.v1.UpdatePosterMetadataRequest
	(*UpdatePosterMetadataResponse)(nil), // 10: posters.v1.UpdatePosterMetadataResponse
	(*ExportPostersRequest)(nil),         // 11: posters.v1.ExportPostersRequest
	(*ExportPostersResponse)(nil),        // 12: posters.v1.ExportPostersResponse
	(*DepositionSummary)(nil),            // 13: posters.v1.DepositionSummary
	(*GetZenodoConnectionRequest)(nil),   // 14: posters.v1.GetZenodoConnectionRequest
	(*GetZenodoConnectionResponse)(nil),  // 15: posters.v1.GetZenodoConnectionResponse
	(*DisconnectZenodoRequest)(nil),      // 16: posters.v1.DisconnectZenodoRequest
	(*DisconnectZenodoResponse)(nil),     // 17: posters.v1.DisconnectZenodoResponse
	(*PublishPosterRequest)(nil),         // 18: posters.v1.PublishPosterRequest
	(*PublishProgress)(nil),              // 19: posters.v1.PublishProgress
}
var file_posters_proto_depIdxs = []int32{
	4,  // 0: posters.v1.GetPosterResponse.poster:type_name -> posters.v1.Poster
	4,  // 1: posters.v1.ListPostersResponse.posters:type_name -> posters.v1.Poster
	4,  // 2: posters.v1.UpdatePosterMetadataResponse.poster:type_name -> posters.v1.Poster
	13, // 3: posters.v1.GetZenodoConnectionResponse.existing_depositions:type_name -> posters.v1.DepositionSummary
	0,  // 4: posters.v1.PostersService.UploadPoster:input_type -> posters.v1.UploadPosterRequest
	2,  // 5: posters.v1.PostersService.GetExtractionJob:input_type -> posters.v1.GetExtractionJobRequest
	5,  // 6: posters.v1.PostersService.GetPoster:input_type -> posters.v1.GetPosterRequest
	7,  // 7: posters.v1.PostersService.ListPosters:input_type -> posters.v1.ListPostersRequest
	9,  // 8: posters.v1.PostersService.UpdatePosterMetadata:input_type -> posters.v1.UpdatePosterMetadataRequest
	11, // 9: posters.v1.PostersService.ExportPosters:input_type -> posters.v1.ExportPostersRequest
	14, // 10: posters.v1.PostersService.GetZenodoConnection:input_type -> posters.v1.GetZenodoConnectionRequest
	16, // 11: posters.v1.PostersService.DisconnectZenodo:input_type -> posters.v1.DisconnectZenodoRequest
	18, // 12: posters.v1.PostersService.PublishPoster:input_type -> posters.v1.PublishPosterRequest
	1,  // 13: posters.v1.PostersService.UploadPoster:output_type -> posters.v1.UploadPosterResponse
	3,  // 14: posters.v1.PostersService.GetExtractionJob:output_type -> posters.v1.GetExtractionJobResponse
	6,  // 15: posters.v1.PostersService.GetPoster:output_type -> posters.v1.GetPosterResponse
	8,  // 16: posters.v1.PostersService.ListPosters:output_type -> posters.v1.ListPostersResponse
	10, // 17: posters.v1.PostersService.UpdatePosterMetadata:output_type -> posters.v1.UpdatePosterMetadataResponse
	12, // 18: posters.v1.PostersService.ExportPosters:output_type -> posters.v1.ExportPostersResponse
	15, // 19: posters.v1.PostersService.GetZenodoConnection:output_type -> posters.v1.GetZenodoConnectionResponse
	17, // 20: posters.v1.PostersService.DisconnectZenodo:output_type -> posters.v1.DisconnectZenodoResponse
	19, // 21: posters.v1.PostersService.PublishPoster:output_type -> posters.v1.PublishProgress
	13, // [13:22] is the sub-list for method output_type
	4,  // [4:13] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_posters_proto_init() }
func file_posters_proto_init() {
	if File_posters_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_posters_proto_rawDesc), len(file_posters_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_posters_proto_goTypes,
		DependencyIndexes: file_posters_proto_depIdxs,
		MessageInfos:      file_posters_proto_msgTypes,
	}.Build()
	File_posters_proto = out.File
	file_posters_proto_goTypes = nil
	file_posters_proto_depIdxs = nil
}
