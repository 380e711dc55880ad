// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: labelscan/v1/labelscan.proto

package labelscanv1

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

type Job struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId            string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Status             string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	SourcePath         string                 `protobuf:"bytes,4,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	DisplayName        string                 `protobuf:"bytes,5,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	InputManifest      []*FileDescriptor      `protobuf:"bytes,6,rep,name=input_manifest,json=inputManifest,proto3" json:"input_manifest,omitempty"`
	ParametersJson     string                 `protobuf:"bytes,7,opt,name=parameters_json,json=parametersJson,proto3" json:"parameters_json,omitempty"`
	OutputManifestJson string                 `protobuf:"bytes,8,opt,name=output_manifest_json,json=outputManifestJson,proto3" json:"output_manifest_json,omitempty"`
	TotalFiles         int32                  `protobuf:"varint,9,opt,name=total_files,json=totalFiles,proto3" json:"total_files,omitempty"`
	ProcessedFiles     int32                  `protobuf:"varint,10,opt,name=processed_files,json=processedFiles,proto3" json:"processed_files,omitempty"`
	Progress           float64                `protobuf:"fixed64,11,opt,name=progress,proto3" json:"progress,omitempty"`
	CurrentFile        string                 `protobuf:"bytes,12,opt,name=current_file,json=currentFile,proto3" json:"current_file,omitempty"`
	ArtifactPath       string                 `protobuf:"bytes,13,opt,name=artifact_path,json=artifactPath,proto3" json:"artifact_path,omitempty"`
	ErrorMessage       string                 `protobuf:"bytes,14,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CancelRequested    bool                   `protobuf:"varint,15,opt,name=cancel_requested,json=cancelRequested,proto3" json:"cancel_requested,omitempty"`
	ArtifactsPurged    bool                   `protobuf:"varint,16,opt,name=artifacts_purged,json=artifactsPurged,proto3" json:"artifacts_purged,omitempty"`
	Version            int64                  `protobuf:"varint,17,opt,name=version,proto3" json:"version,omitempty"`
	RetryCount         int32                  `protobuf:"varint,18,opt,name=retry_count,json=retryCount,proto3" json:"retry_count,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,19,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt          string                 `protobuf:"bytes,20,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	StartedAt          string                 `protobuf:"bytes,21,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	CompletedAt        string                 `protobuf:"bytes,22,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	CancelledAt        string                 `protobuf:"bytes,23,opt,name=cancelled_at,json=cancelledAt,proto3" json:"cancelled_at,omitempty"`
	FailedAt           string                 `protobuf:"bytes,24,opt,name=failed_at,json=failedAt,proto3" json:"failed_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_labelscan_v1_labelscan_proto_rawDescGZIP(), []int{0}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *Job) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *Job) GetInputManifest() []*FileDescriptor {
	if x != nil {
		return x.InputManifest
	}
	return nil
}

func (x *Job) GetParametersJson() string {
	if x != nil {
		return x.ParametersJson
	}
	return ""
}

func (x *Job) GetOutputManifestJson() string {
	if x != nil {
		return x.OutputManifestJson
	}
	return ""
}

func (x *Job) GetTotalFiles() int32 {
	if x != nil {
		return x.TotalFiles
	}
	return 0
}

func (x *Job) GetProcessedFiles() int32 {
	if x != nil {
		return x.ProcessedFiles
	}
	return 0
}

func (x *Job) GetProgress() float64 {
	if x != nil {
		return x.Progress
	}
	return 0
}

func (x *Job) GetCurrentFile() string {
	if x != nil {
		return x.CurrentFile
	}
	return ""
}

func (x *Job) GetArtifactPath() string {
	if x != nil {
		return x.ArtifactPath
	}
	return ""
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Job) GetCancelRequested() bool {
	if x != nil {
		return x.CancelRequested
	}
	return false
}

func (x *Job) GetArtifactsPurged() bool {
	if x != nil {
		return x.ArtifactsPurged
	}
	return false
}

func (x *Job) GetVersion() int64 {
	if x != nil {
		return x.Version
	}
	return 0
}

func (x *Job) GetRetryCount() int32 {
	if x != nil {
		return x.RetryCount
	}
	return 0
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *Job) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *Job) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

func (x *Job) GetCancelledAt() string {
	if x != nil {
		return x.CancelledAt
	}
	return ""
}

func (x *Job) GetFailedAt() string {
	if x != nil {
		return x.FailedAt
	}
	return ""
}

type FileDescriptor struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	SourcePath    string                 `protobuf:"bytes,2,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Size          int64                  `protobuf:"varint,3,opt,name=size,proto3" json:"size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FileDescriptor) Reset() {
	*x = FileDescriptor{}
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FileDescriptor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FileDescriptor) ProtoMessage() {}

func (x *FileDescriptor) ProtoReflect() protoreflect.Message {
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FileDescriptor.ProtoReflect.Descriptor instead.
func (*FileDescriptor) Descriptor() ([]byte, []int) {
	return file_labelscan_v1_labelscan_proto_rawDescGZIP(), []int{1}
}

func (x *FileDescriptor) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *FileDescriptor) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *FileDescriptor) GetSize() int64 {
	if x != nil {
		return x.Size
	}
	return 0
}

type JobEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EventId       int64                  `protobuf:"varint,1,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	Level         string                 `protobuf:"bytes,4,opt,name=level,proto3" json:"level,omitempty"`
	Message       string                 `protobuf:"bytes,5,opt,name=message,proto3" json:"message,omitempty"`
	MetadataJson  string                 `protobuf:"bytes,6,opt,name=metadata_json,json=metadataJson,proto3" json:"metadata_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JobEvent) Reset() {
	*x = JobEvent{}
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobEvent) ProtoMessage() {}

func (x *JobEvent) ProtoReflect() protoreflect.Message {
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobEvent.ProtoReflect.Descriptor instead.
func (*JobEvent) Descriptor() ([]byte, []int) {
	return file_labelscan_v1_labelscan_proto_rawDescGZIP(), []int{2}
}

func (x *JobEvent) GetEventId() int64 {
	if x != nil {
		return x.EventId
	}
	return 0
}

func (x *JobEvent) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *JobEvent) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *JobEvent) GetLevel() string {
	if x != nil {
		return x.Level
	}
	return ""
}

func (x *JobEvent) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *JobEvent) GetMetadataJson() string {
	if x != nil {
		return x.MetadataJson
	}
	return ""
}

type CreateJobRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OwnerId        string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	SourcePath     string                 `protobuf:"bytes,2,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Filenames      []string               `protobuf:"bytes,3,rep,name=filenames,proto3" json:"filenames,omitempty"`
	ParametersJson string                 `protobuf:"bytes,4,opt,name=parameters_json,json=parametersJson,proto3" json:"parameters_json,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateJobRequest) Reset() {
	*x = CreateJobRequest{}
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobRequest) ProtoMessage() {}

func (x *CreateJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobRequest.ProtoReflect.Descriptor instead.
func (*CreateJobRequest) Descriptor() ([]byte, []int) {
	return file_labelscan_v1_labelscan_proto_rawDescGZIP(), []int{3}
}

func (x *CreateJobRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *CreateJobRequest) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *CreateJobRequest) GetFilenames() []string {
	if x != nil {
		return x.Filenames
	}
	return nil
}

func (x *CreateJobRequest) GetParametersJson() string {
	if x != nil {
		return x.ParametersJson
	}
	return ""
}

type CreateJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateJobResponse) Reset() {
	*x = CreateJobResponse{}
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobResponse) ProtoMessage() {}

func (x *CreateJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobResponse.ProtoReflect.Descriptor instead.
func (*CreateJobResponse) Descriptor() ([]byte, []int) {
	return file_labelscan_v1_labelscan_proto_rawDescGZIP(), []int{4}
}

func (x *CreateJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Statuses      []string               `protobuf:"bytes,2,rep,name=statuses,proto3" json:"statuses,omitempty"`
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,4,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_labelscan_v1_labelscan_proto_rawDescGZIP(), []int{5}
}

func (x *ListJobsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ListJobsRequest) GetStatuses() []string {
	if x != nil {
		return x.Statuses
	}
	return nil
}

func (x *ListJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListJobsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_labelscan_v1_labelscan_proto_rawDescGZIP(), []int{6}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_labelscan_v1_labelscan_proto_rawDescGZIP(), []int{7}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	Events        []*JobEvent            `protobuf:"bytes,2,rep,name=events,proto3" json:"events,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_labelscan_v1_labelscan_proto_rawDescGZIP(), []int{8}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

func (x *GetJobResponse) GetEvents() []*JobEvent {
	if x != nil {
		return x.Events
	}
	return nil
}

type CancelJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	RequestedBy   string                 `protobuf:"bytes,3,opt,name=requested_by,json=requestedBy,proto3" json:"requested_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobRequest) Reset() {
	*x = CancelJobRequest{}
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobRequest) ProtoMessage() {}

func (x *CancelJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobRequest.ProtoReflect.Descriptor instead.
func (*CancelJobRequest) Descriptor() ([]byte, []int) {
	return file_labelscan_v1_labelscan_proto_rawDescGZIP(), []int{9}
}

func (x *CancelJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *CancelJobRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *CancelJobRequest) GetRequestedBy() string {
	if x != nil {
		return x.RequestedBy
	}
	return ""
}

type CancelJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobResponse) Reset() {
	*x = CancelJobResponse{}
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobResponse) ProtoMessage() {}

func (x *CancelJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobResponse.ProtoReflect.Descriptor instead.
func (*CancelJobResponse) Descriptor() ([]byte, []int) {
	return file_labelscan_v1_labelscan_proto_rawDescGZIP(), []int{10}
}

func (x *CancelJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetArtifactRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetArtifactRequest) Reset() {
	*x = GetArtifactRequest{}
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetArtifactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetArtifactRequest) ProtoMessage() {}

func (x *GetArtifactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetArtifactRequest.ProtoReflect.Descriptor instead.
func (*GetArtifactRequest) Descriptor() ([]byte, []int) {
	return file_labelscan_v1_labelscan_proto_rawDescGZIP(), []int{11}
}

func (x *GetArtifactRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetArtifactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ArtifactPath  string                 `protobuf:"bytes,1,opt,name=artifact_path,json=artifactPath,proto3" json:"artifact_path,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Size          int64                  `protobuf:"varint,3,opt,name=size,proto3" json:"size,omitempty"`
	ContentType   string                 `protobuf:"bytes,4,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetArtifactResponse) Reset() {
	*x = GetArtifactResponse{}
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetArtifactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetArtifactResponse) ProtoMessage() {}

func (x *GetArtifactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetArtifactResponse.ProtoReflect.Descriptor instead.
func (*GetArtifactResponse) Descriptor() ([]byte, []int) {
	return file_labelscan_v1_labelscan_proto_rawDescGZIP(), []int{12}
}

func (x *GetArtifactResponse) GetArtifactPath() string {
	if x != nil {
		return x.ArtifactPath
	}
	return ""
}

func (x *GetArtifactResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *GetArtifactResponse) GetSize() int64 {
	if x != nil {
		return x.Size
	}
	return 0
}

func (x *GetArtifactResponse) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

type StreamJobEventsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	AfterEventId  int64                  `protobuf:"varint,2,opt,name=after_event_id,json=afterEventId,proto3" json:"after_event_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StreamJobEventsRequest) Reset() {
	*x = StreamJobEventsRequest{}
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StreamJobEventsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StreamJobEventsRequest) ProtoMessage() {}

func (x *StreamJobEventsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labelscan_v1_labelscan_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StreamJobEventsRequest.ProtoReflect.Descriptor instead.
func (*StreamJobEventsRequest) Descriptor() ([]byte, []int) {
	return file_labelscan_v1_labelscan_proto_rawDescGZIP(), []int{13}
}

func (x *StreamJobEventsRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *StreamJobEventsRequest) GetAfterEventId() int64 {
	if x != nil {
		return x.AfterEventId
	}
	return 0
}

var File_labelscan_v1_labelscan_proto protoreflect.FileDescriptor

const file_labelscan_v1_labelscan_proto_rawDesc = "" +
	"\n" +
	"\x1clabelscan/v1/labelscan.proto\x12\flabelscan.v1\"\xd0\x06\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1f\n" +
	"\vsource_path\x18\x04 \x01(\tR\n" +
	"sourcePath\x12!\n" +
	"\fdisplay_name\x18\x05 \x01(\tR\vdisplayName\x12C\n" +
	"\x0einput_manifest\x18\x06 \x03(\v2\x1c.labelscan.v1.FileDescriptorR\rinputManifest\x12'\n" +
	"\x0fparameters_json\x18\a \x01(\tR\x0eparametersJson\x120\n" +
	"\x14output_manifest_json\x18\b \x01(\tR\x12outputManifestJson\x12\x1f\n" +
	"\vtotal_files\x18\t \x01(\x05R\n" +
	"totalFiles\x12'\n" +
	"\x0fprocessed_files\x18\n" +
	" \x01(\x05R\x0eprocessedFiles\x12\x1a\n" +
	"\bprogress\x18\v \x01(\x01R\bprogress\x12!\n" +
	"\fcurrent_file\x18\f \x01(\tR\vcurrentFile\x12#\n" +
	"\rartifact_path\x18\r \x01(\tR\fartifactPath\x12#\n" +
	"\rerror_message\x18\x0e \x01(\tR\ferrorMessage\x12)\n" +
	"\x10cancel_requested\x18\x0f \x01(\bR\x0fcancelRequested\x12)\n" +
	"\x10artifacts_purged\x18\x10 \x01(\bR\x0fartifactsPurged\x12\x18\n" +
	"\aversion\x18\x11 \x01(\x03R\aversion\x12\x1f\n" +
	"\vretry_count\x18\x12 \x01(\x05R\n" +
	"retryCount\x12\x1d\n" +
	"\n" +
	"created_at\x18\x13 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x14 \x01(\tR\tupdatedAt\x12\x1d\n" +
	"\n" +
	"started_at\x18\x15 \x01(\tR\tstartedAt\x12!\n" +
	"\fcompleted_at\x18\x16 \x01(\tR\vcompletedAt\x12!\n" +
	"\fcancelled_at\x18\x17 \x01(\tR\vcancelledAt\x12\x1b\n" +
	"\tfailed_at\x18\x18 \x01(\tR\bfailedAt\"a\n" +
	"\x0eFileDescriptor\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x1f\n" +
	"\vsource_path\x18\x02 \x01(\tR\n" +
	"sourcePath\x12\x12\n" +
	"\x04size\x18\x03 \x01(\x03R\x04size\"\xb0\x01\n" +
	"\bJobEvent\x12\x19\n" +
	"\bevent_id\x18\x01 \x01(\x03R\aeventId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x1d\n" +
	"\n" +
	"created_at\x18\x03 \x01(\tR\tcreatedAt\x12\x14\n" +
	"\x05level\x18\x04 \x01(\tR\x05level\x12\x18\n" +
	"\amessage\x18\x05 \x01(\tR\amessage\x12#\n" +
	"\rmetadata_json\x18\x06 \x01(\tR\fmetadataJson\"\x95\x01\n" +
	"\x10CreateJobRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1f\n" +
	"\vsource_path\x18\x02 \x01(\tR\n" +
	"sourcePath\x12\x1c\n" +
	"\tfilenames\x18\x03 \x03(\tR\tfilenames\x12'\n" +
	"\x0fparameters_json\x18\x04 \x01(\tR\x0eparametersJson\"8\n" +
	"\x11CreateJobResponse\x12#\n" +
	"\x03job\x18\x01 \x01(\v2\x11.labelscan.v1.JobR\x03job\"v\n" +
	"\x0fListJobsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1a\n" +
	"\bstatuses\x18\x02 \x03(\tR\bstatuses\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x04 \x01(\x05R\x06offset\"9\n" +
	"\x10ListJobsResponse\x12%\n" +
	"\x04jobs\x18\x01 \x03(\v2\x11.labelscan.v1.JobR\x04jobs\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"e\n" +
	"\x0eGetJobResponse\x12#\n" +
	"\x03job\x18\x01 \x01(\v2\x11.labelscan.v1.JobR\x03job\x12.\n" +
	"\x06events\x18\x02 \x03(\v2\x16.labelscan.v1.JobEventR\x06events\"d\n" +
	"\x10CancelJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\x12!\n" +
	"\frequested_by\x18\x03 \x01(\tR\vrequestedBy\"8\n" +
	"\x11CancelJobResponse\x12#\n" +
	"\x03job\x18\x01 \x01(\v2\x11.labelscan.v1.JobR\x03job\"+\n" +
	"\x12GetArtifactRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\x8d\x01\n" +
	"\x13GetArtifactResponse\x12#\n" +
	"\rartifact_path\x18\x01 \x01(\tR\fartifactPath\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x12\n" +
	"\x04size\x18\x03 \x01(\x03R\x04size\x12!\n" +
	"\fcontent_type\x18\x04 \x01(\tR\vcontentType\"U\n" +
	"\x16StreamJobEventsRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12$\n" +
	"\x0eafter_event_id\x18\x02 \x01(\x03R\fafterEventId2\xe0\x03\n" +
	"\vJobsService\x12L\n" +
	"\tCreateJob\x12\x1e.labelscan.v1.CreateJobRequest\x1a\x1f.labelscan.v1.CreateJobResponse\x12I\n" +
	"\bListJobs\x12\x1d.labelscan.v1.ListJobsRequest\x1a\x1e.labelscan.v1.ListJobsResponse\x12C\n" +
	"\x06GetJob\x12\x1b.labelscan.v1.GetJobRequest\x1a\x1c.labelscan.v1.GetJobResponse\x12L\n" +
	"\tCancelJob\x12\x1e.labelscan.v1.CancelJobRequest\x1a\x1f.labelscan.v1.CancelJobResponse\x12R\n" +
	"\vGetArtifact\x12 .labelscan.v1.GetArtifactRequest\x1a!.labelscan.v1.GetArtifactResponse\x12Q\n" +
	"\x0fStreamJobEvents\x12$.labelscan.v1.StreamJobEventsRequest\x1a\x16.labelscan.v1.JobEvent0\x01B.Z,labelscan/gen/proto/labelscan/v1;labelscanv1b\x06proto3"

var (
	file_labelscan_v1_labelscan_proto_rawDescOnce sync.Once
	file_labelscan_v1_labelscan_proto_rawDescData []byte
)

func file_labelscan_v1_labelscan_proto_rawDescGZIP() []byte {
	file_labelscan_v1_labelscan_proto_rawDescOnce.Do(func() {
		file_labelscan_v1_labelscan_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_labelscan_v1_labelscan_proto_rawDesc), len(file_labelscan_v1_labelscan_proto_rawDesc)))
	})
	return file_labelscan_v1_labelscan_proto_rawDescData
}

var file_labelscan_v1_labelscan_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_labelscan_v1_labelscan_proto_goTypes = []any{
	(*Job)(nil),                    // 0: labelscan.v1.Job
	(*FileDescriptor)(nil),         // 1: labelscan.v1.FileDescriptor
	(*JobEvent)(nil),               // 2: labelscan.v1.JobEvent
	(*CreateJobRequest)(nil),       // 3: labelscan.v1.CreateJobRequest
	(*CreateJobResponse)(nil),      // 4: labelscan.v1.CreateJobResponse
	(*ListJobsRequest)(nil),        // 5: labelscan.v1.ListJobsRequest
	(*ListJobsResponse)(nil),       // 6: labelscan.v1.ListJobsResponse
	(*GetJobRequest)(nil),          // 7: labelscan.v1.GetJobRequest
	(*GetJobResponse)(nil),         // 8: labelscan.v1.GetJobResponse
	(*CancelJobRequest)(nil),       // 9: labelscan.v1.CancelJobRequest
	(*CancelJobResponse)(nil),      // 10: labelscan.v1.CancelJobResponse
	(*GetArtifactRequest)(nil),     // 11: labelscan.v1.GetArtifactRequest
	(*GetArtifactResponse)(nil),    // 12: labelscan.v1.GetArtifactResponse
	(*StreamJobEventsRequest)(nil), // 13: labelscan.v1.StreamJobEventsRequest
}
var file_labelscan_v1_labelscan_proto_depIdxs = []int32{
	1,  // 0: labelscan.v1.Job.input_manifest:type_name -> labelscan.v1.FileDescriptor
	0,  // 1: labelscan.v1.CreateJobResponse.job:type_name -> labelscan.v1.Job
	0,  // 2: labelscan.v1.ListJobsResponse.jobs:type_name -> labelscan.v1.Job
	0,  // 3: labelscan.v1.GetJobResponse.job:type_name -> labelscan.v1.Job
	2,  // 4: labelscan.v1.GetJobResponse.events:type_name -> labelscan.v1.JobEvent
	0,  // 5: labelscan.v1.CancelJobResponse.job:type_name -> labelscan.v1.Job
	3,  // 6: labelscan.v1.JobsService.CreateJob:input_type -> labelscan.v1.CreateJobRequest
	5,  // 7: labelscan.v1.JobsService.ListJobs:input_type -> labelscan.v1.ListJobsRequest
	7,  // 8: labelscan.v1.JobsService.GetJob:input_type -> labelscan.v1.GetJobRequest
	9,  // 9: labelscan.v1.JobsService.CancelJob:input_type -> labelscan.v1.CancelJobRequest
	11, // 10: labelscan.v1.JobsService.GetArtifact:input_type -> labelscan.v1.GetArtifactRequest
	13, // 11: labelscan.v1.JobsService.StreamJobEvents:input_type -> labelscan.v1.StreamJobEventsRequest
	4,  // 12: labelscan.v1.JobsService.CreateJob:output_type -> labelscan.v1.CreateJobResponse
	6,  // 13: labelscan.v1.JobsService.ListJobs:output_type -> labelscan.v1.ListJobsResponse
	8,  // 14: labelscan.v1.JobsService.GetJob:output_type -> labelscan.v1.GetJobResponse
	10, // 15: labelscan.v1.JobsService.CancelJob:output_type -> labelscan.v1.CancelJobResponse
	12, // 16: labelscan.v1.JobsService.GetArtifact:output_type -> labelscan.v1.GetArtifactResponse
	2,  // 17: labelscan.v1.JobsService.StreamJobEvents:output_type -> labelscan.v1.JobEvent
	12, // [12:18] is the sub-list for method output_type
	6,  // [6:12] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_labelscan_v1_labelscan_proto_init() }
func file_labelscan_v1_labelscan_proto_init() {
	if File_labelscan_v1_labelscan_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_labelscan_v1_labelscan_proto_rawDesc), len(file_labelscan_v1_labelscan_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_labelscan_v1_labelscan_proto_goTypes,
		DependencyIndexes: file_labelscan_v1_labelscan_proto_depIdxs,
		MessageInfos:      file_labelscan_v1_labelscan_proto_msgTypes,
	}.Build()
	File_labelscan_v1_labelscan_proto = out.File
	file_labelscan_v1_labelscan_proto_goTypes = nil
	file_labelscan_v1_labelscan_proto_depIdxs = nil
}
