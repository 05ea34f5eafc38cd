// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: reminder/v1/reminder.proto

package reminderv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ReminderMethod int32

const (
	ReminderMethod_REMINDER_METHOD_UNSPECIFIED ReminderMethod = 0
	ReminderMethod_REMINDER_METHOD_APP_PUSH    ReminderMethod = 1
	ReminderMethod_REMINDER_METHOD_EMAIL       ReminderMethod = 2
	ReminderMethod_REMINDER_METHOD_CALENDAR    ReminderMethod = 3
)

// Enum value maps for ReminderMethod.
var (
	ReminderMethod_name = map[int32]string{
		0: "REMINDER_METHOD_UNSPECIFIED",
		1: "REMINDER_METHOD_APP_PUSH",
		2: "REMINDER_METHOD_EMAIL",
		3: "REMINDER_METHOD_CALENDAR",
	}
	ReminderMethod_value = map[string]int32{
		"REMINDER_METHOD_UNSPECIFIED": 0,
		"REMINDER_METHOD_APP_PUSH":    1,
		"REMINDER_METHOD_EMAIL":       2,
		"REMINDER_METHOD_CALENDAR":    3,
	}
)

func (x ReminderMethod) Enum() *ReminderMethod {
	p := new(ReminderMethod)
	*p = x
	return p
}

func (x ReminderMethod) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ReminderMethod) Descriptor() protoreflect.EnumDescriptor {
	return file_reminder_v1_reminder_proto_enumTypes[0].Descriptor()
}

func (ReminderMethod) Type() protoreflect.EnumType {
	return &file_reminder_v1_reminder_proto_enumTypes[0]
}

func (x ReminderMethod) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ReminderMethod.Descriptor instead.
func (ReminderMethod) EnumDescriptor() ([]byte, []int) {
	return file_reminder_v1_reminder_proto_rawDescGZIP(), []int{0}
}

type ReminderStatus int32

const (
	ReminderStatus_REMINDER_STATUS_UNSPECIFIED ReminderStatus = 0
	ReminderStatus_REMINDER_STATUS_SCHEDULED   ReminderStatus = 1
	ReminderStatus_REMINDER_STATUS_SENT        ReminderStatus = 2
	ReminderStatus_REMINDER_STATUS_CANCELLED   ReminderStatus = 3
)

// Enum value maps for ReminderStatus.
var (
	ReminderStatus_name = map[int32]string{
		0: "REMINDER_STATUS_UNSPECIFIED",
		1: "REMINDER_STATUS_SCHEDULED",
		2: "REMINDER_STATUS_SENT",
		3: "REMINDER_STATUS_CANCELLED",
	}
	ReminderStatus_value = map[string]int32{
		"REMINDER_STATUS_UNSPECIFIED": 0,
		"REMINDER_STATUS_SCHEDULED":   1,
		"REMINDER_STATUS_SENT":        2,
		"REMINDER_STATUS_CANCELLED":   3,
	}
)

func (x ReminderStatus) Enum() *ReminderStatus {
	p := new(ReminderStatus)
	*p = x
	return p
}

func (x ReminderStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ReminderStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_reminder_v1_reminder_proto_enumTypes[1].Descriptor()
}

func (ReminderStatus) Type() protoreflect.EnumType {
	return &file_reminder_v1_reminder_proto_enumTypes[1]
}

func (x ReminderStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ReminderStatus.Descriptor instead.
func (ReminderStatus) EnumDescriptor() ([]byte, []int) {
	return file_reminder_v1_reminder_proto_rawDescGZIP(), []int{1}
}

type Reminder struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id        int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	TaskId    int64                  `protobuf:"varint,2,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	RemindAt  *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=remind_at,json=remindAt,proto3" json:"remind_at,omitempty"`
	Method    ReminderMethod         `protobuf:"varint,4,opt,name=method,proto3,enum=reminder.v1.ReminderMethod" json:"method,omitempty"`
	Status    ReminderStatus         `protobuf:"varint,5,opt,name=status,proto3,enum=reminder.v1.ReminderStatus" json:"status,omitempty"`
	CreatedAt *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
}

func (x *Reminder) Reset() {
	*x = Reminder{}
	if protoimpl.UnsafeEnabled {
		mi := &file_reminder_v1_reminder_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Reminder) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Reminder) ProtoMessage() {}

func (x *Reminder) ProtoReflect() protoreflect.Message {
	mi := &file_reminder_v1_reminder_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Reminder.ProtoReflect.Descriptor instead.
func (*Reminder) Descriptor() ([]byte, []int) {
	return file_reminder_v1_reminder_proto_rawDescGZIP(), []int{0}
}

func (x *Reminder) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Reminder) GetTaskId() int64 {
	if x != nil {
		return x.TaskId
	}
	return 0
}

func (x *Reminder) GetRemindAt() *timestamppb.Timestamp {
	if x != nil {
		return x.RemindAt
	}
	return nil
}

func (x *Reminder) GetMethod() ReminderMethod {
	if x != nil {
		return x.Method
	}
	return ReminderMethod_REMINDER_METHOD_UNSPECIFIED
}

func (x *Reminder) GetStatus() ReminderStatus {
	if x != nil {
		return x.Status
	}
	return ReminderStatus_REMINDER_STATUS_UNSPECIFIED
}

func (x *Reminder) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type CreateReminderRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	TaskId   int64                  `protobuf:"varint,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	RemindAt *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=remind_at,json=remindAt,proto3" json:"remind_at,omitempty"`
	Method   ReminderMethod         `protobuf:"varint,3,opt,name=method,proto3,enum=reminder.v1.ReminderMethod" json:"method,omitempty"`
}

func (x *CreateReminderRequest) Reset() {
	*x = CreateReminderRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_reminder_v1_reminder_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CreateReminderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateReminderRequest) ProtoMessage() {}

func (x *CreateReminderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reminder_v1_reminder_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateReminderRequest.ProtoReflect.Descriptor instead.
func (*CreateReminderRequest) Descriptor() ([]byte, []int) {
	return file_reminder_v1_reminder_proto_rawDescGZIP(), []int{1}
}

func (x *CreateReminderRequest) GetTaskId() int64 {
	if x != nil {
		return x.TaskId
	}
	return 0
}

func (x *CreateReminderRequest) GetRemindAt() *timestamppb.Timestamp {
	if x != nil {
		return x.RemindAt
	}
	return nil
}

func (x *CreateReminderRequest) GetMethod() ReminderMethod {
	if x != nil {
		return x.Method
	}
	return ReminderMethod_REMINDER_METHOD_UNSPECIFIED
}

type CreateReminderResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Reminder *Reminder `protobuf:"bytes,1,opt,name=reminder,proto3" json:"reminder,omitempty"`
}

func (x *CreateReminderResponse) Reset() {
	*x = CreateReminderResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_reminder_v1_reminder_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CreateReminderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateReminderResponse) ProtoMessage() {}

func (x *CreateReminderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reminder_v1_reminder_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateReminderResponse.ProtoReflect.Descriptor instead.
func (*CreateReminderResponse) Descriptor() ([]byte, []int) {
	return file_reminder_v1_reminder_proto_rawDescGZIP(), []int{2}
}

func (x *CreateReminderResponse) GetReminder() *Reminder {
	if x != nil {
		return x.Reminder
	}
	return nil
}

type ListUpcomingRemindersRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	WorkspaceId int64 `protobuf:"varint,1,opt,name=workspace_id,json=workspaceId,proto3" json:"workspace_id,omitempty"`
	TaskId      int64 `protobuf:"varint,2,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Limit       int32 `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (x *ListUpcomingRemindersRequest) Reset() {
	*x = ListUpcomingRemindersRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_reminder_v1_reminder_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListUpcomingRemindersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUpcomingRemindersRequest) ProtoMessage() {}

func (x *ListUpcomingRemindersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reminder_v1_reminder_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUpcomingRemindersRequest.ProtoReflect.Descriptor instead.
func (*ListUpcomingRemindersRequest) Descriptor() ([]byte, []int) {
	return file_reminder_v1_reminder_proto_rawDescGZIP(), []int{3}
}

func (x *ListUpcomingRemindersRequest) GetWorkspaceId() int64 {
	if x != nil {
		return x.WorkspaceId
	}
	return 0
}

func (x *ListUpcomingRemindersRequest) GetTaskId() int64 {
	if x != nil {
		return x.TaskId
	}
	return 0
}

func (x *ListUpcomingRemindersRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListUpcomingRemindersResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Reminders []*Reminder `protobuf:"bytes,1,rep,name=reminders,proto3" json:"reminders,omitempty"`
}

func (x *ListUpcomingRemindersResponse) Reset() {
	*x = ListUpcomingRemindersResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_reminder_v1_reminder_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListUpcomingRemindersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUpcomingRemindersResponse) ProtoMessage() {}

func (x *ListUpcomingRemindersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reminder_v1_reminder_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUpcomingRemindersResponse.ProtoReflect.Descriptor instead.
func (*ListUpcomingRemindersResponse) Descriptor() ([]byte, []int) {
	return file_reminder_v1_reminder_proto_rawDescGZIP(), []int{4}
}

func (x *ListUpcomingRemindersResponse) GetReminders() []*Reminder {
	if x != nil {
		return x.Reminders
	}
	return nil
}

type CancelReminderRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id int64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (x *CancelReminderRequest) Reset() {
	*x = CancelReminderRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_reminder_v1_reminder_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CancelReminderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelReminderRequest) ProtoMessage() {}

func (x *CancelReminderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reminder_v1_reminder_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelReminderRequest.ProtoReflect.Descriptor instead.
func (*CancelReminderRequest) Descriptor() ([]byte, []int) {
	return file_reminder_v1_reminder_proto_rawDescGZIP(), []int{5}
}

func (x *CancelReminderRequest) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

type CancelReminderResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Reminder *Reminder `protobuf:"bytes,1,opt,name=reminder,proto3" json:"reminder,omitempty"`
}

func (x *CancelReminderResponse) Reset() {
	*x = CancelReminderResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_reminder_v1_reminder_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CancelReminderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelReminderResponse) ProtoMessage() {}

func (x *CancelReminderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reminder_v1_reminder_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelReminderResponse.ProtoReflect.Descriptor instead.
func (*CancelReminderResponse) Descriptor() ([]byte, []int) {
	return file_reminder_v1_reminder_proto_rawDescGZIP(), []int{6}
}

func (x *CancelReminderResponse) GetReminder() *Reminder {
	if x != nil {
		return x.Reminder
	}
	return nil
}

var File_reminder_v1_reminder_proto protoreflect.FileDescriptor

var file_reminder_v1_reminder_proto_rawDesc = []byte{
	0x0a, 0x1a, 0x72, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x2f, 0x76, 0x31, 0x2f, 0x72, 0x65,
	0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x0b, 0x72, 0x65,
	0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x1a, 0x1f, 0x67, 0x6f, 0x6f, 0x67, 0x6c,
	0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2f, 0x74, 0x69, 0x6d, 0x65, 0x73,
	0x74, 0x61, 0x6d, 0x70, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x22, 0x91, 0x02, 0x0a, 0x08, 0x52,
	0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x12, 0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x02, 0x69, 0x64, 0x12, 0x17, 0x0a, 0x07, 0x74, 0x61, 0x73, 0x6b, 0x5f,
	0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x06, 0x74, 0x61, 0x73, 0x6b, 0x49, 0x64,
	0x12, 0x37, 0x0a, 0x09, 0x72, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52,
	0x08, 0x72, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x41, 0x74, 0x12, 0x33, 0x0a, 0x06, 0x6d, 0x65, 0x74,
	0x68, 0x6f, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x1b, 0x2e, 0x72, 0x65, 0x6d, 0x69,
	0x6e, 0x64, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72,
	0x4d, 0x65, 0x74, 0x68, 0x6f, 0x64, 0x52, 0x06, 0x6d, 0x65, 0x74, 0x68, 0x6f, 0x64, 0x12, 0x33,
	0x0a, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x18, 0x05, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x1b,
	0x2e, 0x72, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x6d,
	0x69, 0x6e, 0x64, 0x65, 0x72, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x06, 0x73, 0x74, 0x61,
	0x74, 0x75, 0x73, 0x12, 0x39, 0x0a, 0x0a, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x61,
	0x74, 0x18, 0x06, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65,
	0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74,
	0x61, 0x6d, 0x70, 0x52, 0x09, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x41, 0x74, 0x22, 0x9e,
	0x01, 0x0a, 0x15, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x52, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65,
	0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x74, 0x61, 0x73, 0x6b,
	0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x06, 0x74, 0x61, 0x73, 0x6b, 0x49,
	0x64, 0x12, 0x37, 0x0a, 0x09, 0x72, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70,
	0x52, 0x08, 0x72, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x41, 0x74, 0x12, 0x33, 0x0a, 0x06, 0x6d, 0x65,
	0x74, 0x68, 0x6f, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x1b, 0x2e, 0x72, 0x65, 0x6d,
	0x69, 0x6e, 0x64, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65,
	0x72, 0x4d, 0x65, 0x74, 0x68, 0x6f, 0x64, 0x52, 0x06, 0x6d, 0x65, 0x74, 0x68, 0x6f, 0x64, 0x22,
	0x4b, 0x0a, 0x16, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x52, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65,
	0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x31, 0x0a, 0x08, 0x72, 0x65, 0x6d,
	0x69, 0x6e, 0x64, 0x65, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x15, 0x2e, 0x72, 0x65,
	0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x6d, 0x69, 0x6e, 0x64,
	0x65, 0x72, 0x52, 0x08, 0x72, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x22, 0x70, 0x0a, 0x1c,
	0x4c, 0x69, 0x73, 0x74, 0x55, 0x70, 0x63, 0x6f, 0x6d, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x6d, 0x69,
	0x6e, 0x64, 0x65, 0x72, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x21, 0x0a, 0x0c,
	0x77, 0x6f, 0x72, 0x6b, 0x73, 0x70, 0x61, 0x63, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x03, 0x52, 0x0b, 0x77, 0x6f, 0x72, 0x6b, 0x73, 0x70, 0x61, 0x63, 0x65, 0x49, 0x64, 0x12,
	0x17, 0x0a, 0x07, 0x74, 0x61, 0x73, 0x6b, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x06, 0x74, 0x61, 0x73, 0x6b, 0x49, 0x64, 0x12, 0x14, 0x0a, 0x05, 0x6c, 0x69, 0x6d, 0x69,
	0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x05, 0x52, 0x05, 0x6c, 0x69, 0x6d, 0x69, 0x74, 0x22, 0x54,
	0x0a, 0x1d, 0x4c, 0x69, 0x73, 0x74, 0x55, 0x70, 0x63, 0x6f, 0x6d, 0x69, 0x6e, 0x67, 0x52, 0x65,
	0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x33, 0x0a, 0x09, 0x72, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x73, 0x18, 0x01, 0x20, 0x03,
	0x28, 0x0b, 0x32, 0x15, 0x2e, 0x72, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x2e, 0x76, 0x31,
	0x2e, 0x52, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x52, 0x09, 0x72, 0x65, 0x6d, 0x69, 0x6e,
	0x64, 0x65, 0x72, 0x73, 0x22, 0x27, 0x0a, 0x15, 0x43, 0x61, 0x6e, 0x63, 0x65, 0x6c, 0x52, 0x65,
	0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x0e, 0x0a,
	0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x02, 0x69, 0x64, 0x22, 0x4b, 0x0a,
	0x16, 0x43, 0x61, 0x6e, 0x63, 0x65, 0x6c, 0x52, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x31, 0x0a, 0x08, 0x72, 0x65, 0x6d, 0x69, 0x6e,
	0x64, 0x65, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x15, 0x2e, 0x72, 0x65, 0x6d, 0x69,
	0x6e, 0x64, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72,
	0x52, 0x08, 0x72, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x2a, 0x88, 0x01, 0x0a, 0x0e, 0x52,
	0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x4d, 0x65, 0x74, 0x68, 0x6f, 0x64, 0x12, 0x1f, 0x0a,
	0x1b, 0x52, 0x45, 0x4d, 0x49, 0x4e, 0x44, 0x45, 0x52, 0x5f, 0x4d, 0x45, 0x54, 0x48, 0x4f, 0x44,
	0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x1c,
	0x0a, 0x18, 0x52, 0x45, 0x4d, 0x49, 0x4e, 0x44, 0x45, 0x52, 0x5f, 0x4d, 0x45, 0x54, 0x48, 0x4f,
	0x44, 0x5f, 0x41, 0x50, 0x50, 0x5f, 0x50, 0x55, 0x53, 0x48, 0x10, 0x01, 0x12, 0x19, 0x0a, 0x15,
	0x52, 0x45, 0x4d, 0x49, 0x4e, 0x44, 0x45, 0x52, 0x5f, 0x4d, 0x45, 0x54, 0x48, 0x4f, 0x44, 0x5f,
	0x45, 0x4d, 0x41, 0x49, 0x4c, 0x10, 0x02, 0x12, 0x1c, 0x0a, 0x18, 0x52, 0x45, 0x4d, 0x49, 0x4e,
	0x44, 0x45, 0x52, 0x5f, 0x4d, 0x45, 0x54, 0x48, 0x4f, 0x44, 0x5f, 0x43, 0x41, 0x4c, 0x45, 0x4e,
	0x44, 0x41, 0x52, 0x10, 0x03, 0x2a, 0x89, 0x01, 0x0a, 0x0e, 0x52, 0x65, 0x6d, 0x69, 0x6e, 0x64,
	0x65, 0x72, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x1f, 0x0a, 0x1b, 0x52, 0x45, 0x4d, 0x49,
	0x4e, 0x44, 0x45, 0x52, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53, 0x5f, 0x55, 0x4e, 0x53, 0x50,
	0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x1d, 0x0a, 0x19, 0x52, 0x45, 0x4d,
	0x49, 0x4e, 0x44, 0x45, 0x52, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53, 0x5f, 0x53, 0x43, 0x48,
	0x45, 0x44, 0x55, 0x4c, 0x45, 0x44, 0x10, 0x01, 0x12, 0x18, 0x0a, 0x14, 0x52, 0x45, 0x4d, 0x49,
	0x4e, 0x44, 0x45, 0x52, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53, 0x5f, 0x53, 0x45, 0x4e, 0x54,
	0x10, 0x02, 0x12, 0x1d, 0x0a, 0x19, 0x52, 0x45, 0x4d, 0x49, 0x4e, 0x44, 0x45, 0x52, 0x5f, 0x53,
	0x54, 0x41, 0x54, 0x55, 0x53, 0x5f, 0x43, 0x41, 0x4e, 0x43, 0x45, 0x4c, 0x4c, 0x45, 0x44, 0x10,
	0x03, 0x32, 0xb7, 0x02, 0x0a, 0x0f, 0x52, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x53, 0x65,
	0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x59, 0x0a, 0x0e, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x52,
	0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x12, 0x22, 0x2e, 0x72, 0x65, 0x6d, 0x69, 0x6e, 0x64,
	0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x52, 0x65, 0x6d, 0x69,
	0x6e, 0x64, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x23, 0x2e, 0x72, 0x65,
	0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65,
	0x52, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x6e, 0x0a, 0x15, 0x4c, 0x69, 0x73, 0x74, 0x55, 0x70, 0x63, 0x6f, 0x6d, 0x69, 0x6e, 0x67,
	0x52, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x73, 0x12, 0x29, 0x2e, 0x72, 0x65, 0x6d, 0x69,
	0x6e, 0x64, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x55, 0x70, 0x63, 0x6f,
	0x6d, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x73, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x2a, 0x2e, 0x72, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x2e,
	0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x55, 0x70, 0x63, 0x6f, 0x6d, 0x69, 0x6e, 0x67, 0x52,
	0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x59, 0x0a, 0x0e, 0x43, 0x61, 0x6e, 0x63, 0x65, 0x6c, 0x52, 0x65, 0x6d, 0x69, 0x6e, 0x64,
	0x65, 0x72, 0x12, 0x22, 0x2e, 0x72, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x2e, 0x76, 0x31,
	0x2e, 0x43, 0x61, 0x6e, 0x63, 0x65, 0x6c, 0x52, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x23, 0x2e, 0x72, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65,
	0x72, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x61, 0x6e, 0x63, 0x65, 0x6c, 0x52, 0x65, 0x6d, 0x69, 0x6e,
	0x64, 0x65, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x4f, 0x5a, 0x4d, 0x67,
	0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x77, 0x6f, 0x72, 0x6b, 0x62, 0x65,
	0x6e, 0x63, 0x68, 0x6c, 0x61, 0x62, 0x73, 0x2f, 0x77, 0x6f, 0x72, 0x6b, 0x62, 0x65, 0x6e, 0x63,
	0x68, 0x2f, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x72, 0x65, 0x6d, 0x69,
	0x6e, 0x64, 0x65, 0x72, 0x2f, 0x76, 0x31, 0x2f, 0x67, 0x65, 0x6e, 0x65, 0x72, 0x61, 0x74, 0x65,
	0x64, 0x3b, 0x72, 0x65, 0x6d, 0x69, 0x6e, 0x64, 0x65, 0x72, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_reminder_v1_reminder_proto_rawDescOnce sync.Once
	file_reminder_v1_reminder_proto_rawDescData = file_reminder_v1_reminder_proto_rawDesc
)

func file_reminder_v1_reminder_proto_rawDescGZIP() []byte {
	file_reminder_v1_reminder_proto_rawDescOnce.Do(func() {
		file_reminder_v1_reminder_proto_rawDescData = protoimpl.X.CompressGZIP(file_reminder_v1_reminder_proto_rawDescData)
	})
	return file_reminder_v1_reminder_proto_rawDescData
}

var file_reminder_v1_reminder_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_reminder_v1_reminder_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_reminder_v1_reminder_proto_goTypes = []any{
	(ReminderMethod)(0),                   // 0: reminder.v1.ReminderMethod
	(ReminderStatus)(0),                   // 1: reminder.v1.ReminderStatus
	(*Reminder)(nil),                      // 2: reminder.v1.Reminder
	(*CreateReminderRequest)(nil),         // 3: reminder.v1.CreateReminderRequest
	(*CreateReminderResponse)(nil),        // 4: reminder.v1.CreateReminderResponse
	(*ListUpcomingRemindersRequest)(nil),  // 5: reminder.v1.ListUpcomingRemindersRequest
	(*ListUpcomingRemindersResponse)(nil), // 6: reminder.v1.ListUpcomingRemindersResponse
	(*CancelReminderRequest)(nil),         // 7: reminder.v1.CancelReminderRequest
	(*CancelReminderResponse)(nil),        // 8: reminder.v1.CancelReminderResponse
	(*timestamppb.Timestamp)(nil),         // 9: google.protobuf.Timestamp
}
var file_reminder_v1_reminder_proto_depIdxs = []int32{
	9,  // 0: reminder.v1.Reminder.remind_at:type_name -> google.protobuf.Timestamp
	0,  // 1: reminder.v1.Reminder.method:type_name -> reminder.v1.ReminderMethod
	1,  // 2: reminder.v1.Reminder.status:type_name -> reminder.v1.ReminderStatus
	9,  // 3: reminder.v1.Reminder.created_at:type_name -> google.protobuf.Timestamp
	9,  // 4: reminder.v1.CreateReminderRequest.remind_at:type_name -> google.protobuf.Timestamp
	0,  // 5: reminder.v1.CreateReminderRequest.method:type_name -> reminder.v1.ReminderMethod
	2,  // 6: reminder.v1.CreateReminderResponse.reminder:type_name -> reminder.v1.Reminder
	2,  // 7: reminder.v1.ListUpcomingRemindersResponse.reminders:type_name -> reminder.v1.Reminder
	2,  // 8: reminder.v1.CancelReminderResponse.reminder:type_name -> reminder.v1.Reminder
	3,  // 9: reminder.v1.ReminderService.CreateReminder:input_type -> reminder.v1.CreateReminderRequest
	5,  // 10: reminder.v1.ReminderService.ListUpcomingReminders:input_type -> reminder.v1.ListUpcomingRemindersRequest
	7,  // 11: reminder.v1.ReminderService.CancelReminder:input_type -> reminder.v1.CancelReminderRequest
	4,  // 12: reminder.v1.ReminderService.CreateReminder:output_type -> reminder.v1.CreateReminderResponse
	6,  // 13: reminder.v1.ReminderService.ListUpcomingReminders:output_type -> reminder.v1.ListUpcomingRemindersResponse
	8,  // 14: reminder.v1.ReminderService.CancelReminder:output_type -> reminder.v1.CancelReminderResponse
	12, // [12:15] is the sub-list for method output_type
	9,  // [9:12] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_reminder_v1_reminder_proto_init() }
func file_reminder_v1_reminder_proto_init() {
	if File_reminder_v1_reminder_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_reminder_v1_reminder_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*Reminder); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_reminder_v1_reminder_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*CreateReminderRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_reminder_v1_reminder_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*CreateReminderResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_reminder_v1_reminder_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*ListUpcomingRemindersRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_reminder_v1_reminder_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*ListUpcomingRemindersResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_reminder_v1_reminder_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*CancelReminderRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_reminder_v1_reminder_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*CancelReminderResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_reminder_v1_reminder_proto_rawDesc,
			NumEnums:      2,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_reminder_v1_reminder_proto_goTypes,
		DependencyIndexes: file_reminder_v1_reminder_proto_depIdxs,
		EnumInfos:         file_reminder_v1_reminder_proto_enumTypes,
		MessageInfos:      file_reminder_v1_reminder_proto_msgTypes,
	}.Build()
	File_reminder_v1_reminder_proto = out.File
	file_reminder_v1_reminder_proto_rawDesc = nil
	file_reminder_v1_reminder_proto_goTypes = nil
	file_reminder_v1_reminder_proto_depIdxs = nil
}
