// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: captures/v1/captures.proto

package capturespb

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

type Capture struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Url             string                 `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	Text            string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	Source          string                 `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	InputType       string                 `protobuf:"bytes,4,opt,name=input_type,json=inputType,proto3" json:"input_type,omitempty"` // WEB | TEXT | IMAGE | DOCUMENT | MEDIA | PRODUCT | PLACE | QR_CODE
	PayloadPath     string                 `protobuf:"bytes,5,opt,name=payload_path,json=payloadPath,proto3" json:"payload_path,omitempty"`
	SessionId       string                 `protobuf:"bytes,6,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	LocationName    string                 `protobuf:"bytes,7,opt,name=location_name,json=locationName,proto3" json:"location_name,omitempty"`
	Lat             float64                `protobuf:"fixed64,8,opt,name=lat,proto3" json:"lat,omitempty"`
	Lng             float64                `protobuf:"fixed64,9,opt,name=lng,proto3" json:"lng,omitempty"`
	PlaceId         string                 `protobuf:"bytes,10,opt,name=place_id,json=placeId,proto3" json:"place_id,omitempty"`
	Title           string                 `protobuf:"bytes,11,opt,name=title,proto3" json:"title,omitempty"`
	MasterCaptureId string                 `protobuf:"bytes,12,opt,name=master_capture_id,json=masterCaptureId,proto3" json:"master_capture_id,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Capture) Reset() {
	*x = Capture{}
	mi := &file_captures_v1_captures_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Capture) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Capture) ProtoMessage() {}

func (x *Capture) ProtoReflect() protoreflect.Message {
	mi := &file_captures_v1_captures_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Capture.ProtoReflect.Descriptor instead.
func (*Capture) Descriptor() ([]byte, []int) {
	return file_captures_v1_captures_proto_rawDescGZIP(), []int{0}
}

func (x *Capture) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *Capture) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *Capture) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Capture) GetInputType() string {
	if x != nil {
		return x.InputType
	}
	return ""
}

func (x *Capture) GetPayloadPath() string {
	if x != nil {
		return x.PayloadPath
	}
	return ""
}

func (x *Capture) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *Capture) GetLocationName() string {
	if x != nil {
		return x.LocationName
	}
	return ""
}

func (x *Capture) GetLat() float64 {
	if x != nil {
		return x.Lat
	}
	return 0
}

func (x *Capture) GetLng() float64 {
	if x != nil {
		return x.Lng
	}
	return 0
}

func (x *Capture) GetPlaceId() string {
	if x != nil {
		return x.PlaceId
	}
	return ""
}

func (x *Capture) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Capture) GetMasterCaptureId() string {
	if x != nil {
		return x.MasterCaptureId
	}
	return ""
}

type Statement struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Evidence      string                 `protobuf:"bytes,2,opt,name=evidence,proto3" json:"evidence,omitempty"` // visual | location
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Statement) Reset() {
	*x = Statement{}
	mi := &file_captures_v1_captures_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Statement) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Statement) ProtoMessage() {}

func (x *Statement) ProtoReflect() protoreflect.Message {
	mi := &file_captures_v1_captures_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Statement.ProtoReflect.Descriptor instead.
func (*Statement) Descriptor() ([]byte, []int) {
	return file_captures_v1_captures_proto_rawDescGZIP(), []int{1}
}

func (x *Statement) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *Statement) GetEvidence() string {
	if x != nil {
		return x.Evidence
	}
	return ""
}

type Item struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Url            string                 `protobuf:"bytes,2,opt,name=url,proto3" json:"url,omitempty"`
	Title          string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Summary        string                 `protobuf:"bytes,4,opt,name=summary,proto3" json:"summary,omitempty"`
	EntityType     string                 `protobuf:"bytes,5,opt,name=entity_type,json=entityType,proto3" json:"entity_type,omitempty"`
	Status         string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	Tags           []string               `protobuf:"bytes,7,rep,name=tags,proto3" json:"tags,omitempty"`
	Categories     []string               `protobuf:"bytes,8,rep,name=categories,proto3" json:"categories,omitempty"`
	Purposes       []string               `protobuf:"bytes,9,rep,name=purposes,proto3" json:"purposes,omitempty"`
	Questions      []string               `protobuf:"bytes,10,rep,name=questions,proto3" json:"questions,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt      string                 `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	SessionId      string                 `protobuf:"bytes,13,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	PlaceName      string                 `protobuf:"bytes,14,opt,name=place_name,json=placeName,proto3" json:"place_name,omitempty"`
	PlaceId        string                 `protobuf:"bytes,15,opt,name=place_id,json=placeId,proto3" json:"place_id,omitempty"`
	Price          float64                `protobuf:"fixed64,16,opt,name=price,proto3" json:"price,omitempty"`
	Rating         float64                `protobuf:"fixed64,17,opt,name=rating,proto3" json:"rating,omitempty"`
	CoverImagePath string                 `protobuf:"bytes,18,opt,name=cover_image_path,json=coverImagePath,proto3" json:"cover_image_path,omitempty"`
	FailureCount   int32                  `protobuf:"varint,19,opt,name=failure_count,json=failureCount,proto3" json:"failure_count,omitempty"`
	Statements     []*Statement           `protobuf:"bytes,20,rep,name=statements,proto3" json:"statements,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Item) Reset() {
	*x = Item{}
	mi := &file_captures_v1_captures_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Item) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Item) ProtoMessage() {}

func (x *Item) ProtoReflect() protoreflect.Message {
	mi := &file_captures_v1_captures_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Item.ProtoReflect.Descriptor instead.
func (*Item) Descriptor() ([]byte, []int) {
	return file_captures_v1_captures_proto_rawDescGZIP(), []int{2}
}

func (x *Item) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Item) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *Item) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Item) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *Item) GetEntityType() string {
	if x != nil {
		return x.EntityType
	}
	return ""
}

func (x *Item) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Item) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *Item) GetCategories() []string {
	if x != nil {
		return x.Categories
	}
	return nil
}

func (x *Item) GetPurposes() []string {
	if x != nil {
		return x.Purposes
	}
	return nil
}

func (x *Item) GetQuestions() []string {
	if x != nil {
		return x.Questions
	}
	return nil
}

func (x *Item) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Item) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *Item) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *Item) GetPlaceName() string {
	if x != nil {
		return x.PlaceName
	}
	return ""
}

func (x *Item) GetPlaceId() string {
	if x != nil {
		return x.PlaceId
	}
	return ""
}

func (x *Item) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *Item) GetRating() float64 {
	if x != nil {
		return x.Rating
	}
	return 0
}

func (x *Item) GetCoverImagePath() string {
	if x != nil {
		return x.CoverImagePath
	}
	return ""
}

func (x *Item) GetFailureCount() int32 {
	if x != nil {
		return x.FailureCount
	}
	return 0
}

func (x *Item) GetStatements() []*Statement {
	if x != nil {
		return x.Statements
	}
	return nil
}

type ProcessCaptureRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Capture       *Capture               `protobuf:"bytes,1,opt,name=capture,proto3" json:"capture,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessCaptureRequest) Reset() {
	*x = ProcessCaptureRequest{}
	mi := &file_captures_v1_captures_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessCaptureRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessCaptureRequest) ProtoMessage() {}

func (x *ProcessCaptureRequest) ProtoReflect() protoreflect.Message {
	mi := &file_captures_v1_captures_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessCaptureRequest.ProtoReflect.Descriptor instead.
func (*ProcessCaptureRequest) Descriptor() ([]byte, []int) {
	return file_captures_v1_captures_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessCaptureRequest) GetCapture() *Capture {
	if x != nil {
		return x.Capture
	}
	return nil
}

type ProcessCaptureResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *Item                  `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessCaptureResponse) Reset() {
	*x = ProcessCaptureResponse{}
	mi := &file_captures_v1_captures_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessCaptureResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessCaptureResponse) ProtoMessage() {}

func (x *ProcessCaptureResponse) ProtoReflect() protoreflect.Message {
	mi := &file_captures_v1_captures_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessCaptureResponse.ProtoReflect.Descriptor instead.
func (*ProcessCaptureResponse) Descriptor() ([]byte, []int) {
	return file_captures_v1_captures_proto_rawDescGZIP(), []int{4}
}

func (x *ProcessCaptureResponse) GetItem() *Item {
	if x != nil {
		return x.Item
	}
	return nil
}

type ProcessInboxRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessInboxRequest) Reset() {
	*x = ProcessInboxRequest{}
	mi := &file_captures_v1_captures_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessInboxRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessInboxRequest) ProtoMessage() {}

func (x *ProcessInboxRequest) ProtoReflect() protoreflect.Message {
	mi := &file_captures_v1_captures_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessInboxRequest.ProtoReflect.Descriptor instead.
func (*ProcessInboxRequest) Descriptor() ([]byte, []int) {
	return file_captures_v1_captures_proto_rawDescGZIP(), []int{5}
}

type ProcessInboxResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ingested      int32                  `protobuf:"varint,1,opt,name=ingested,proto3" json:"ingested,omitempty"`
	Processed     int32                  `protobuf:"varint,2,opt,name=processed,proto3" json:"processed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessInboxResponse) Reset() {
	*x = ProcessInboxResponse{}
	mi := &file_captures_v1_captures_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessInboxResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessInboxResponse) ProtoMessage() {}

func (x *ProcessInboxResponse) ProtoReflect() protoreflect.Message {
	mi := &file_captures_v1_captures_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessInboxResponse.ProtoReflect.Descriptor instead.
func (*ProcessInboxResponse) Descriptor() ([]byte, []int) {
	return file_captures_v1_captures_proto_rawDescGZIP(), []int{6}
}

func (x *ProcessInboxResponse) GetIngested() int32 {
	if x != nil {
		return x.Ingested
	}
	return 0
}

func (x *ProcessInboxResponse) GetProcessed() int32 {
	if x != nil {
		return x.Processed
	}
	return 0
}

type DrainPendingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DrainPendingRequest) Reset() {
	*x = DrainPendingRequest{}
	mi := &file_captures_v1_captures_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DrainPendingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DrainPendingRequest) ProtoMessage() {}

func (x *DrainPendingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_captures_v1_captures_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DrainPendingRequest.ProtoReflect.Descriptor instead.
func (*DrainPendingRequest) Descriptor() ([]byte, []int) {
	return file_captures_v1_captures_proto_rawDescGZIP(), []int{7}
}

type DrainPendingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Processed     int32                  `protobuf:"varint,1,opt,name=processed,proto3" json:"processed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DrainPendingResponse) Reset() {
	*x = DrainPendingResponse{}
	mi := &file_captures_v1_captures_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DrainPendingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DrainPendingResponse) ProtoMessage() {}

func (x *DrainPendingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_captures_v1_captures_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DrainPendingResponse.ProtoReflect.Descriptor instead.
func (*DrainPendingResponse) Descriptor() ([]byte, []int) {
	return file_captures_v1_captures_proto_rawDescGZIP(), []int{8}
}

func (x *DrainPendingResponse) GetProcessed() int32 {
	if x != nil {
		return x.Processed
	}
	return 0
}

type ReprocessSinceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SinceDate     string                 `protobuf:"bytes,1,opt,name=since_date,json=sinceDate,proto3" json:"since_date,omitempty"` // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessSinceRequest) Reset() {
	*x = ReprocessSinceRequest{}
	mi := &file_captures_v1_captures_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessSinceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessSinceRequest) ProtoMessage() {}

func (x *ReprocessSinceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_captures_v1_captures_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessSinceRequest.ProtoReflect.Descriptor instead.
func (*ReprocessSinceRequest) Descriptor() ([]byte, []int) {
	return file_captures_v1_captures_proto_rawDescGZIP(), []int{9}
}

func (x *ReprocessSinceRequest) GetSinceDate() string {
	if x != nil {
		return x.SinceDate
	}
	return ""
}

type ReprocessProgress struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Done          int32                  `protobuf:"varint,1,opt,name=done,proto3" json:"done,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessProgress) Reset() {
	*x = ReprocessProgress{}
	mi := &file_captures_v1_captures_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessProgress) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessProgress) ProtoMessage() {}

func (x *ReprocessProgress) ProtoReflect() protoreflect.Message {
	mi := &file_captures_v1_captures_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessProgress.ProtoReflect.Descriptor instead.
func (*ReprocessProgress) Descriptor() ([]byte, []int) {
	return file_captures_v1_captures_proto_rawDescGZIP(), []int{10}
}

func (x *ReprocessProgress) GetDone() int32 {
	if x != nil {
		return x.Done
	}
	return 0
}

func (x *ReprocessProgress) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ReprocessProgress) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type ListItemsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"` // optional filter
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListItemsRequest) Reset() {
	*x = ListItemsRequest{}
	mi := &file_captures_v1_captures_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListItemsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListItemsRequest) ProtoMessage() {}

func (x *ListItemsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_captures_v1_captures_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListItemsRequest.ProtoReflect.Descriptor instead.
func (*ListItemsRequest) Descriptor() ([]byte, []int) {
	return file_captures_v1_captures_proto_rawDescGZIP(), []int{11}
}

func (x *ListItemsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListItemsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListItemsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*Item                `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListItemsResponse) Reset() {
	*x = ListItemsResponse{}
	mi := &file_captures_v1_captures_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListItemsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListItemsResponse) ProtoMessage() {}

func (x *ListItemsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_captures_v1_captures_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListItemsResponse.ProtoReflect.Descriptor instead.
func (*ListItemsResponse) Descriptor() ([]byte, []int) {
	return file_captures_v1_captures_proto_rawDescGZIP(), []int{12}
}

func (x *ListItemsResponse) GetItems() []*Item {
	if x != nil {
		return x.Items
	}
	return nil
}

type GetItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetItemRequest) Reset() {
	*x = GetItemRequest{}
	mi := &file_captures_v1_captures_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetItemRequest) ProtoMessage() {}

func (x *GetItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_captures_v1_captures_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetItemRequest.ProtoReflect.Descriptor instead.
func (*GetItemRequest) Descriptor() ([]byte, []int) {
	return file_captures_v1_captures_proto_rawDescGZIP(), []int{13}
}

func (x *GetItemRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetItemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *Item                  `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetItemResponse) Reset() {
	*x = GetItemResponse{}
	mi := &file_captures_v1_captures_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetItemResponse) ProtoMessage() {}

func (x *GetItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_captures_v1_captures_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetItemResponse.ProtoReflect.Descriptor instead.
func (*GetItemResponse) Descriptor() ([]byte, []int) {
	return file_captures_v1_captures_proto_rawDescGZIP(), []int{14}
}

func (x *GetItemResponse) GetItem() *Item {
	if x != nil {
		return x.Item
	}
	return nil
}

type ExportItemsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`                     // optional filter
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportItemsRequest) Reset() {
	*x = ExportItemsRequest{}
	mi := &file_captures_v1_captures_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportItemsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportItemsRequest) ProtoMessage() {}

func (x *ExportItemsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_captures_v1_captures_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportItemsRequest.ProtoReflect.Descriptor instead.
func (*ExportItemsRequest) Descriptor() ([]byte, []int) {
	return file_captures_v1_captures_proto_rawDescGZIP(), []int{15}
}

func (x *ExportItemsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExportItemsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportItemsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportItemsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportItemsResponse) Reset() {
	*x = ExportItemsResponse{}
	mi := &file_captures_v1_captures_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportItemsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportItemsResponse) ProtoMessage() {}

func (x *ExportItemsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_captures_v1_captures_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportItemsResponse.ProtoReflect.Descriptor instead.
func (*ExportItemsResponse) Descriptor() ([]byte, []int) {
	return file_captures_v1_captures_proto_rawDescGZIP(), []int{16}
}

func (x *ExportItemsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_captures_v1_captures_proto protoreflect.FileDescriptor

const file_captures_v1_captures_proto_rawDesc = "" +
	"\n" +
	"\x1acaptures/v1/captures.proto\x12\vcaptures.v1\"\xce\x02\n" +
	"\aCapture\x12\x10\n" +
	"\x03url\x18\x01 \x01(\tR\x03url\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\x12\x1d\n" +
	"\n" +
	"input_type\x18\x04 \x01(\tR\tinputType\x12!\n" +
	"\fpayload_path\x18\x05 \x01(\tR\vpayloadPath\x12\x1d\n" +
	"\n" +
	"session_id\x18\x06 \x01(\tR\tsessionId\x12#\n" +
	"\rlocation_name\x18\a \x01(\tR\flocationName\x12\x10\n" +
	"\x03lat\x18\b \x01(\x01R\x03lat\x12\x10\n" +
	"\x03lng\x18\t \x01(\x01R\x03lng\x12\x19\n" +
	"\bplace_id\x18\n" +
	" \x01(\tR\aplaceId\x12\x14\n" +
	"\x05title\x18\v \x01(\tR\x05title\x12*\n" +
	"\x11master_capture_id\x18\f \x01(\tR\x0fmasterCaptureId\";\n" +
	"\tStatement\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x1a\n" +
	"\bevidence\x18\x02 \x01(\tR\bevidence\"\xcb\x04\n" +
	"\x04Item\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x10\n" +
	"\x03url\x18\x02 \x01(\tR\x03url\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12\x18\n" +
	"\asummary\x18\x04 \x01(\tR\asummary\x12\x1f\n" +
	"\ventity_type\x18\x05 \x01(\tR\n" +
	"entityType\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x12\n" +
	"\x04tags\x18\a \x03(\tR\x04tags\x12\x1e\n" +
	"\n" +
	"categories\x18\b \x03(\tR\n" +
	"categories\x12\x1a\n" +
	"\bpurposes\x18\t \x03(\tR\bpurposes\x12\x1c\n" +
	"\tquestions\x18\n" +
	" \x03(\tR\tquestions\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAt\x12\x1d\n" +
	"\n" +
	"session_id\x18\r \x01(\tR\tsessionId\x12\x1d\n" +
	"\n" +
	"place_name\x18\x0e \x01(\tR\tplaceName\x12\x19\n" +
	"\bplace_id\x18\x0f \x01(\tR\aplaceId\x12\x14\n" +
	"\x05price\x18\x10 \x01(\x01R\x05price\x12\x16\n" +
	"\x06rating\x18\x11 \x01(\x01R\x06rating\x12(\n" +
	"\x10cover_image_path\x18\x12 \x01(\tR\x0ecoverImagePath\x12#\n" +
	"\rfailure_count\x18\x13 \x01(\x05R\ffailureCount\x126\n" +
	"\n" +
	"statements\x18\x14 \x03(\v2\x16.captures.v1.StatementR\n" +
	"statements\"G\n" +
	"\x15ProcessCaptureRequest\x12.\n" +
	"\acapture\x18\x01 \x01(\v2\x14.captures.v1.CaptureR\acapture\"?\n" +
	"\x16ProcessCaptureResponse\x12%\n" +
	"\x04item\x18\x01 \x01(\v2\x11.captures.v1.ItemR\x04item\"\x15\n" +
	"\x13ProcessInboxRequest\"P\n" +
	"\x14ProcessInboxResponse\x12\x1a\n" +
	"\bingested\x18\x01 \x01(\x05R\bingested\x12\x1c\n" +
	"\tprocessed\x18\x02 \x01(\x05R\tprocessed\"\x15\n" +
	"\x13DrainPendingRequest\"4\n" +
	"\x14DrainPendingResponse\x12\x1c\n" +
	"\tprocessed\x18\x01 \x01(\x05R\tprocessed\"6\n" +
	"\x15ReprocessSinceRequest\x12\x1d\n" +
	"\n" +
	"since_date\x18\x01 \x01(\tR\tsinceDate\"W\n" +
	"\x11ReprocessProgress\x12\x12\n" +
	"\x04done\x18\x01 \x01(\x05R\x04done\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\"@\n" +
	"\x10ListItemsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"<\n" +
	"\x11ListItemsResponse\x12'\n" +
	"\x05items\x18\x01 \x03(\v2\x11.captures.v1.ItemR\x05items\" \n" +
	"\x0eGetItemRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"8\n" +
	"\x0fGetItemResponse\x12%\n" +
	"\x04item\x18\x01 \x01(\v2\x11.captures.v1.ItemR\x04item\"b\n" +
	"\x12ExportItemsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\")\n" +
	"\x13ExportItemsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xd1\x04\n" +
	"\x0eCaptureService\x12Y\n" +
	"\x0eProcessCapture\x12\".captures.v1.ProcessCaptureRequest\x1a#.captures.v1.ProcessCaptureResponse\x12S\n" +
	"\fProcessInbox\x12 .captures.v1.ProcessInboxRequest\x1a!.captures.v1.ProcessInboxResponse\x12S\n" +
	"\fDrainPending\x12 .captures.v1.DrainPendingRequest\x1a!.captures.v1.DrainPendingResponse\x12V\n" +
	"\x0eReprocessSince\x12\".captures.v1.ReprocessSinceRequest\x1a\x1e.captures.v1.ReprocessProgress0\x01\x12J\n" +
	"\tListItems\x12\x1d.captures.v1.ListItemsRequest\x1a\x1e.captures.v1.ListItemsResponse\x12D\n" +
	"\aGetItem\x12\x1b.captures.v1.GetItemRequest\x1a\x1c.captures.v1.GetItemResponse\x12P\n" +
	"\vExportItems\x12\x1f.captures.v1.ExportItemsRequest\x1a .captures.v1.ExportItemsResponseBEZCgithub.com/capturedesk/capturedesk/gen/proto/captures/v1;capturespbb\x06proto3"

var (
	file_captures_v1_captures_proto_rawDescOnce sync.Once
	file_captures_v1_captures_proto_rawDescData []byte
)

func file_captures_v1_captures_proto_rawDescGZIP() []byte {
	file_captures_v1_captures_proto_rawDescOnce.Do(func() {
		file_captures_v1_captures_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_captures_v1_captures_proto_rawDesc), len(file_captures_v1_captures_proto_rawDesc)))
	})
	return file_captures_v1_captures_proto_rawDescData
}

var file_captures_v1_captures_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_captures_v1_captures_proto_goTypes = []any{
	(*Capture)(nil),                // 0: captures.v1.Capture
	(*Statement)(nil),              // 1: captures.v1.Statement
	(*Item)(nil),                   // 2: captures.v1.Item
	(*ProcessCaptureRequest)(nil),  // 3: captures.v1.ProcessCaptureRequest
	(*ProcessCaptureResponse)(nil), // 4: captures.v1.ProcessCaptureResponse
	(*ProcessInboxRequest)(nil),    // 5: captures.v1.ProcessInboxRequest
	(*ProcessInboxResponse)(nil),   // 6: captures.v1.ProcessInboxResponse
	(*DrainPendingRequest)(nil),    // 7: captures.v1.DrainPendingRequest
	(*DrainPendingResponse)(nil),   // 8: captures.v1.DrainPendingResponse
	(*ReprocessSinceRequest)(nil),  // 9: captures.v1.ReprocessSinceRequest
	(*ReprocessProgress)(nil),      // 10: captures.v1.ReprocessProgress
	(*ListItemsRequest)(nil),       // 11: captures.v1.ListItemsRequest
	(*ListItemsResponse)(nil),      // 12: captures.v1.ListItemsResponse
	(*GetItemRequest)(nil),         // 13: captures.v1.GetItemRequest
	(*GetItemResponse)(nil),        // 14: captures.v1.GetItemResponse
	(*ExportItemsRequest)(nil),     // 15: captures.v1.ExportItemsRequest
	(*ExportItemsResponse)(nil),    // 16: captures.v1.ExportItemsResponse
}
var file_captures_v1_captures_proto_depIdxs = []int32{
	1,  // 0: captures.v1.Item.statements:type_name -> captures.v1.Statement
	0,  // 1: captures.v1.ProcessCaptureRequest.capture:type_name -> captures.v1.Capture
	2,  // 2: captures.v1.ProcessCaptureResponse.item:type_name -> captures.v1.Item
	2,  // 3: captures.v1.ListItemsResponse.items:type_name -> captures.v1.Item
	2,  // 4: captures.v1.GetItemResponse.item:type_name -> captures.v1.Item
	3,  // 5: captures.v1.CaptureService.ProcessCapture:input_type -> captures.v1.ProcessCaptureRequest
	5,  // 6: captures.v1.CaptureService.ProcessInbox:input_type -> captures.v1.ProcessInboxRequest
	7,  // 7: captures.v1.CaptureService.DrainPending:input_type -> captures.v1.DrainPendingRequest
	9,  // 8: captures.v1.CaptureService.ReprocessSince:input_type -> captures.v1.ReprocessSinceRequest
	11, // 9: captures.v1.CaptureService.ListItems:input_type -> captures.v1.ListItemsRequest
	13, // 10: captures.v1.CaptureService.GetItem:input_type -> captures.v1.GetItemRequest
	15, // 11: captures.v1.CaptureService.ExportItems:input_type -> captures.v1.ExportItemsRequest
	4,  // 12: captures.v1.CaptureService.ProcessCapture:output_type -> captures.v1.ProcessCaptureResponse
	6,  // 13: captures.v1.CaptureService.ProcessInbox:output_type -> captures.v1.ProcessInboxResponse
	8,  // 14: captures.v1.CaptureService.DrainPending:output_type -> captures.v1.DrainPendingResponse
	10, // 15: captures.v1.CaptureService.ReprocessSince:output_type -> captures.v1.ReprocessProgress
	12, // 16: captures.v1.CaptureService.ListItems:output_type -> captures.v1.ListItemsResponse
	14, // 17: captures.v1.CaptureService.GetItem:output_type -> captures.v1.GetItemResponse
	16, // 18: captures.v1.CaptureService.ExportItems:output_type -> captures.v1.ExportItemsResponse
	12, // [12:19] is the sub-list for method output_type
	5,  // [5:12] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_captures_v1_captures_proto_init() }
func file_captures_v1_captures_proto_init() {
	if File_captures_v1_captures_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_captures_v1_captures_proto_rawDesc), len(file_captures_v1_captures_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_captures_v1_captures_proto_goTypes,
		DependencyIndexes: file_captures_v1_captures_proto_depIdxs,
		MessageInfos:      file_captures_v1_captures_proto_msgTypes,
	}.Build()
	File_captures_v1_captures_proto = out.File
	file_captures_v1_captures_proto_goTypes = nil
	file_captures_v1_captures_proto_depIdxs = nil
}
