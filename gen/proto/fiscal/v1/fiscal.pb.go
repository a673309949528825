// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: fiscal/v1/fiscal.proto

package fiscalv1

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

type SubmitBatchRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Paths visible to the daemon: PDF files, ZIP archives or directories to
	// scan recursively.
	Paths         []string `protobuf:"bytes,1,rep,name=paths,proto3" json:"paths,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBatchRequest) Reset() {
	*x = SubmitBatchRequest{}
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBatchRequest) ProtoMessage() {}

func (x *SubmitBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBatchRequest.ProtoReflect.Descriptor instead.
func (*SubmitBatchRequest) Descriptor() ([]byte, []int) {
	return file_fiscal_v1_fiscal_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitBatchRequest) GetPaths() []string {
	if x != nil {
		return x.Paths
	}
	return nil
}

type SubmitBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	TotalFiles    uint32                 `protobuf:"varint,2,opt,name=total_files,json=totalFiles,proto3" json:"total_files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBatchResponse) Reset() {
	*x = SubmitBatchResponse{}
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBatchResponse) ProtoMessage() {}

func (x *SubmitBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBatchResponse.ProtoReflect.Descriptor instead.
func (*SubmitBatchResponse) Descriptor() ([]byte, []int) {
	return file_fiscal_v1_fiscal_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitBatchResponse) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *SubmitBatchResponse) GetTotalFiles() uint32 {
	if x != nil {
		return x.TotalFiles
	}
	return 0
}

type GetBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBatchRequest) Reset() {
	*x = GetBatchRequest{}
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchRequest) ProtoMessage() {}

func (x *GetBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchRequest.ProtoReflect.Descriptor instead.
func (*GetBatchRequest) Descriptor() ([]byte, []int) {
	return file_fiscal_v1_fiscal_proto_rawDescGZIP(), []int{2}
}

func (x *GetBatchRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

type GetBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Batch         *Batch                 `protobuf:"bytes,1,opt,name=batch,proto3" json:"batch,omitempty"`
	Records       []*Record              `protobuf:"bytes,2,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBatchResponse) Reset() {
	*x = GetBatchResponse{}
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchResponse) ProtoMessage() {}

func (x *GetBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchResponse.ProtoReflect.Descriptor instead.
func (*GetBatchResponse) Descriptor() ([]byte, []int) {
	return file_fiscal_v1_fiscal_proto_rawDescGZIP(), []int{3}
}

func (x *GetBatchResponse) GetBatch() *Batch {
	if x != nil {
		return x.Batch
	}
	return nil
}

func (x *GetBatchResponse) GetRecords() []*Record {
	if x != nil {
		return x.Records
	}
	return nil
}

type ListBatchesRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// 0 means the server default.
	Limit         uint32 `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBatchesRequest) Reset() {
	*x = ListBatchesRequest{}
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBatchesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBatchesRequest) ProtoMessage() {}

func (x *ListBatchesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBatchesRequest.ProtoReflect.Descriptor instead.
func (*ListBatchesRequest) Descriptor() ([]byte, []int) {
	return file_fiscal_v1_fiscal_proto_rawDescGZIP(), []int{4}
}

func (x *ListBatchesRequest) GetLimit() uint32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListBatchesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Batches       []*Batch               `protobuf:"bytes,1,rep,name=batches,proto3" json:"batches,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBatchesResponse) Reset() {
	*x = ListBatchesResponse{}
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBatchesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBatchesResponse) ProtoMessage() {}

func (x *ListBatchesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBatchesResponse.ProtoReflect.Descriptor instead.
func (*ListBatchesResponse) Descriptor() ([]byte, []int) {
	return file_fiscal_v1_fiscal_proto_rawDescGZIP(), []int{5}
}

func (x *ListBatchesResponse) GetBatches() []*Batch {
	if x != nil {
		return x.Batches
	}
	return nil
}

type WatchBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchBatchRequest) Reset() {
	*x = WatchBatchRequest{}
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchBatchRequest) ProtoMessage() {}

func (x *WatchBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchBatchRequest.ProtoReflect.Descriptor instead.
func (*WatchBatchRequest) Descriptor() ([]byte, []int) {
	return file_fiscal_v1_fiscal_proto_rawDescGZIP(), []int{6}
}

func (x *WatchBatchRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

type CancelBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelBatchRequest) Reset() {
	*x = CancelBatchRequest{}
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelBatchRequest) ProtoMessage() {}

func (x *CancelBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelBatchRequest.ProtoReflect.Descriptor instead.
func (*CancelBatchRequest) Descriptor() ([]byte, []int) {
	return file_fiscal_v1_fiscal_proto_rawDescGZIP(), []int{7}
}

func (x *CancelBatchRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

type CancelBatchResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// True when the batch was still running and the cancel flag was set.
	Cancelling    bool `protobuf:"varint,1,opt,name=cancelling,proto3" json:"cancelling,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelBatchResponse) Reset() {
	*x = CancelBatchResponse{}
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelBatchResponse) ProtoMessage() {}

func (x *CancelBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelBatchResponse.ProtoReflect.Descriptor instead.
func (*CancelBatchResponse) Descriptor() ([]byte, []int) {
	return file_fiscal_v1_fiscal_proto_rawDescGZIP(), []int{8}
}

func (x *CancelBatchResponse) GetCancelling() bool {
	if x != nil {
		return x.Cancelling
	}
	return false
}

type ExportReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportRequest) Reset() {
	*x = ExportReportRequest{}
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportRequest) ProtoMessage() {}

func (x *ExportReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportRequest.ProtoReflect.Descriptor instead.
func (*ExportReportRequest) Descriptor() ([]byte, []int) {
	return file_fiscal_v1_fiscal_proto_rawDescGZIP(), []int{9}
}

func (x *ExportReportRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

type ExportReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Xlsx          []byte                 `protobuf:"bytes,2,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportResponse) Reset() {
	*x = ExportReportResponse{}
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportResponse) ProtoMessage() {}

func (x *ExportReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportResponse.ProtoReflect.Descriptor instead.
func (*ExportReportResponse) Descriptor() ([]byte, []int) {
	return file_fiscal_v1_fiscal_proto_rawDescGZIP(), []int{10}
}

func (x *ExportReportResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExportReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

// Batch mirrors the extract_batch row.
type Batch struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Source        string                 `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"` // RUNNING | COMPLETED | CANCELLED
	TotalFiles    uint32                 `protobuf:"varint,4,opt,name=total_files,json=totalFiles,proto3" json:"total_files,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,5,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Failed        uint32                 `protobuf:"varint,6,opt,name=failed,proto3" json:"failed,omitempty"`
	Cancelled     uint32                 `protobuf:"varint,7,opt,name=cancelled,proto3" json:"cancelled,omitempty"`
	StartedAt     string                 `protobuf:"bytes,8,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`    // RFC3339
	FinishedAt    string                 `protobuf:"bytes,9,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"` // RFC3339, empty while running
	ReportPath    string                 `protobuf:"bytes,10,opt,name=report_path,json=reportPath,proto3" json:"report_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Batch) Reset() {
	*x = Batch{}
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Batch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Batch) ProtoMessage() {}

func (x *Batch) ProtoReflect() protoreflect.Message {
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Batch.ProtoReflect.Descriptor instead.
func (*Batch) Descriptor() ([]byte, []int) {
	return file_fiscal_v1_fiscal_proto_rawDescGZIP(), []int{11}
}

func (x *Batch) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Batch) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Batch) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Batch) GetTotalFiles() uint32 {
	if x != nil {
		return x.TotalFiles
	}
	return 0
}

func (x *Batch) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *Batch) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *Batch) GetCancelled() uint32 {
	if x != nil {
		return x.Cancelled
	}
	return 0
}

func (x *Batch) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *Batch) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *Batch) GetReportPath() string {
	if x != nil {
		return x.ReportPath
	}
	return ""
}

// Record mirrors the fiscal_record row. Dates keep the Brazilian DD/MM/YYYY
// form; valor_total is a decimal string, empty when absent.
type Record struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename         string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	DocumentType     string                 `protobuf:"bytes,3,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"` // NF-e | NFS-e | Desconhecido
	Status           string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`                                 // COMPLETED | ERROR | CANCELLED
	Numero           string                 `protobuf:"bytes,5,opt,name=numero,proto3" json:"numero,omitempty"`
	ChaveAcesso      string                 `protobuf:"bytes,6,opt,name=chave_acesso,json=chaveAcesso,proto3" json:"chave_acesso,omitempty"`
	DataEmissao      string                 `protobuf:"bytes,7,opt,name=data_emissao,json=dataEmissao,proto3" json:"data_emissao,omitempty"`
	EmitenteCnpj     string                 `protobuf:"bytes,8,opt,name=emitente_cnpj,json=emitenteCnpj,proto3" json:"emitente_cnpj,omitempty"`
	EmitenteNome     string                 `protobuf:"bytes,9,opt,name=emitente_nome,json=emitenteNome,proto3" json:"emitente_nome,omitempty"`
	DestinatarioCnpj string                 `protobuf:"bytes,10,opt,name=destinatario_cnpj,json=destinatarioCnpj,proto3" json:"destinatario_cnpj,omitempty"`
	DestinatarioNome string                 `protobuf:"bytes,11,opt,name=destinatario_nome,json=destinatarioNome,proto3" json:"destinatario_nome,omitempty"`
	Coligada         string                 `protobuf:"bytes,12,opt,name=coligada,proto3" json:"coligada,omitempty"`
	Filial           string                 `protobuf:"bytes,13,opt,name=filial,proto3" json:"filial,omitempty"`
	ValorTotal       string                 `protobuf:"bytes,14,opt,name=valor_total,json=valorTotal,proto3" json:"valor_total,omitempty"`
	IsScanned        bool                   `protobuf:"varint,15,opt,name=is_scanned,json=isScanned,proto3" json:"is_scanned,omitempty"`
	ErrorMessage     string                 `protobuf:"bytes,16,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ProcessingMs     int64                  `protobuf:"varint,17,opt,name=processing_ms,json=processingMs,proto3" json:"processing_ms,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Record) Reset() {
	*x = Record{}
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Record) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Record) ProtoMessage() {}

func (x *Record) ProtoReflect() protoreflect.Message {
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Record.ProtoReflect.Descriptor instead.
func (*Record) Descriptor() ([]byte, []int) {
	return file_fiscal_v1_fiscal_proto_rawDescGZIP(), []int{12}
}

func (x *Record) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Record) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Record) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *Record) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Record) GetNumero() string {
	if x != nil {
		return x.Numero
	}
	return ""
}

func (x *Record) GetChaveAcesso() string {
	if x != nil {
		return x.ChaveAcesso
	}
	return ""
}

func (x *Record) GetDataEmissao() string {
	if x != nil {
		return x.DataEmissao
	}
	return ""
}

func (x *Record) GetEmitenteCnpj() string {
	if x != nil {
		return x.EmitenteCnpj
	}
	return ""
}

func (x *Record) GetEmitenteNome() string {
	if x != nil {
		return x.EmitenteNome
	}
	return ""
}

func (x *Record) GetDestinatarioCnpj() string {
	if x != nil {
		return x.DestinatarioCnpj
	}
	return ""
}

func (x *Record) GetDestinatarioNome() string {
	if x != nil {
		return x.DestinatarioNome
	}
	return ""
}

func (x *Record) GetColigada() string {
	if x != nil {
		return x.Coligada
	}
	return ""
}

func (x *Record) GetFilial() string {
	if x != nil {
		return x.Filial
	}
	return ""
}

func (x *Record) GetValorTotal() string {
	if x != nil {
		return x.ValorTotal
	}
	return ""
}

func (x *Record) GetIsScanned() bool {
	if x != nil {
		return x.IsScanned
	}
	return false
}

func (x *Record) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Record) GetProcessingMs() int64 {
	if x != nil {
		return x.ProcessingMs
	}
	return 0
}

type BatchProgress struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	Current       uint32                 `protobuf:"varint,2,opt,name=current,proto3" json:"current,omitempty"`
	Total         uint32                 `protobuf:"varint,3,opt,name=total,proto3" json:"total,omitempty"`
	Filename      string                 `protobuf:"bytes,4,opt,name=filename,proto3" json:"filename,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	Percentage    float64                `protobuf:"fixed64,6,opt,name=percentage,proto3" json:"percentage,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BatchProgress) Reset() {
	*x = BatchProgress{}
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchProgress) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchProgress) ProtoMessage() {}

func (x *BatchProgress) ProtoReflect() protoreflect.Message {
	mi := &file_fiscal_v1_fiscal_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchProgress.ProtoReflect.Descriptor instead.
func (*BatchProgress) Descriptor() ([]byte, []int) {
	return file_fiscal_v1_fiscal_proto_rawDescGZIP(), []int{13}
}

func (x *BatchProgress) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *BatchProgress) GetCurrent() uint32 {
	if x != nil {
		return x.Current
	}
	return 0
}

func (x *BatchProgress) GetTotal() uint32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *BatchProgress) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *BatchProgress) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *BatchProgress) GetPercentage() float64 {
	if x != nil {
		return x.Percentage
	}
	return 0
}

var File_fiscal_v1_fiscal_proto protoreflect.FileDescriptor

const file_fiscal_v1_fiscal_proto_rawDesc = "" +
	"\n" +
	"\x16fiscal/v1/fiscal.proto\x12\tfiscal.v1\"*\n" +
	"\x12SubmitBatchRequest\x12\x14\n" +
	"\x05paths\x18\x01 \x03(\tR\x05paths\"Q\n" +
	"\x13SubmitBatchResponse\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\x12\x1f\n" +
	"\vtotal_files\x18\x02 \x01(\rR\n" +
	"totalFiles\",\n" +
	"\x0fGetBatchRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\"g\n" +
	"\x10GetBatchResponse\x12&\n" +
	"\x05batch\x18\x01 \x01(\v2\x10.fiscal.v1.BatchR\x05batch\x12+\n" +
	"\arecords\x18\x02 \x03(\v2\x11.fiscal.v1.RecordR\arecords\"*\n" +
	"\x12ListBatchesRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\rR\x05limit\"A\n" +
	"\x13ListBatchesResponse\x12*\n" +
	"\abatches\x18\x01 \x03(\v2\x10.fiscal.v1.BatchR\abatches\".\n" +
	"\x11WatchBatchRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\"/\n" +
	"\x12CancelBatchRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\"5\n" +
	"\x13CancelBatchResponse\x12\x1e\n" +
	"\n" +
	"cancelling\x18\x01 \x01(\bR\n" +
	"cancelling\"0\n" +
	"\x13ExportReportRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\"F\n" +
	"\x14ExportReportResponse\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x12\n" +
	"\x04xlsx\x18\x02 \x01(\fR\x04xlsx\"\x9d\x02\n" +
	"\x05Batch\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06source\x18\x02 \x01(\tR\x06source\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1f\n" +
	"\vtotal_files\x18\x04 \x01(\rR\n" +
	"totalFiles\x12\x1c\n" +
	"\tsucceeded\x18\x05 \x01(\rR\tsucceeded\x12\x16\n" +
	"\x06failed\x18\x06 \x01(\rR\x06failed\x12\x1c\n" +
	"\tcancelled\x18\a \x01(\rR\tcancelled\x12\x1d\n" +
	"\n" +
	"started_at\x18\b \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\t \x01(\tR\n" +
	"finishedAt\x12\x1f\n" +
	"\vreport_path\x18\n" +
	" \x01(\tR\n" +
	"reportPath\"\xb1\x04\n" +
	"\x06Record\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12#\n" +
	"\rdocument_type\x18\x03 \x01(\tR\fdocumentType\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x16\n" +
	"\x06numero\x18\x05 \x01(\tR\x06numero\x12!\n" +
	"\fchave_acesso\x18\x06 \x01(\tR\vchaveAcesso\x12!\n" +
	"\fdata_emissao\x18\a \x01(\tR\vdataEmissao\x12#\n" +
	"\remitente_cnpj\x18\b \x01(\tR\femitenteCnpj\x12#\n" +
	"\remitente_nome\x18\t \x01(\tR\femitenteNome\x12+\n" +
	"\x11destinatario_cnpj\x18\n" +
	" \x01(\tR\x10destinatarioCnpj\x12+\n" +
	"\x11destinatario_nome\x18\v \x01(\tR\x10destinatarioNome\x12\x1a\n" +
	"\bcoligada\x18\f \x01(\tR\bcoligada\x12\x16\n" +
	"\x06filial\x18\r \x01(\tR\x06filial\x12\x1f\n" +
	"\vvalor_total\x18\x0e \x01(\tR\n" +
	"valorTotal\x12\x1d\n" +
	"\n" +
	"is_scanned\x18\x0f \x01(\bR\tisScanned\x12#\n" +
	"\rerror_message\x18\x10 \x01(\tR\ferrorMessage\x12#\n" +
	"\rprocessing_ms\x18\x11 \x01(\x03R\fprocessingMs\"\xae\x01\n" +
	"\rBatchProgress\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\x12\x18\n" +
	"\acurrent\x18\x02 \x01(\rR\acurrent\x12\x14\n" +
	"\x05total\x18\x03 \x01(\rR\x05total\x12\x1a\n" +
	"\bfilename\x18\x04 \x01(\tR\bfilename\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1e\n" +
	"\n" +
	"percentage\x18\x06 \x01(\x01R\n" +
	"percentage2\xd6\x03\n" +
	"\fBatchService\x12L\n" +
	"\vSubmitBatch\x12\x1d.fiscal.v1.SubmitBatchRequest\x1a\x1e.fiscal.v1.SubmitBatchResponse\x12C\n" +
	"\bGetBatch\x12\x1a.fiscal.v1.GetBatchRequest\x1a\x1b.fiscal.v1.GetBatchResponse\x12L\n" +
	"\vListBatches\x12\x1d.fiscal.v1.ListBatchesRequest\x1a\x1e.fiscal.v1.ListBatchesResponse\x12F\n" +
	"\n" +
	"WatchBatch\x12\x1c.fiscal.v1.WatchBatchRequest\x1a\x18.fiscal.v1.BatchProgress0\x01\x12L\n" +
	"\vCancelBatch\x12\x1d.fiscal.v1.CancelBatchRequest\x1a\x1e.fiscal.v1.CancelBatchResponse\x12O\n" +
	"\fExportReport\x12\x1e.fiscal.v1.ExportReportRequest\x1a\x1f.fiscal.v1.ExportReportResponseBAZ?github.com/fiscaldata/nf-extractor/gen/proto/fiscal/v1;fiscalv1b\x06proto3"

var (
	file_fiscal_v1_fiscal_proto_rawDescOnce sync.Once
	file_fiscal_v1_fiscal_proto_rawDescData []byte
)

func file_fiscal_v1_fiscal_proto_rawDescGZIP() []byte {
	file_fiscal_v1_fiscal_proto_rawDescOnce.Do(func() {
		file_fiscal_v1_fiscal_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_fiscal_v1_fiscal_proto_rawDesc), len(file_fiscal_v1_fiscal_proto_rawDesc)))
	})
	return file_fiscal_v1_fiscal_proto_rawDescData
}

var file_fiscal_v1_fiscal_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_fiscal_v1_fiscal_proto_goTypes = []any{
	(*SubmitBatchRequest)(nil),   // 0: fiscal.v1.SubmitBatchRequest
	(*SubmitBatchResponse)(nil),  // 1: fiscal.v1.SubmitBatchResponse
	(*GetBatchRequest)(nil),      // 2: fiscal.v1.GetBatchRequest
	(*GetBatchResponse)(nil),     // 3: fiscal.v1.GetBatchResponse
	(*ListBatchesRequest)(nil),   // 4: fiscal.v1.ListBatchesRequest
	(*ListBatchesResponse)(nil),  // 5: fiscal.v1.ListBatchesResponse
	(*WatchBatchRequest)(nil),    // 6: fiscal.v1.WatchBatchRequest
	(*CancelBatchRequest)(nil),   // 7: fiscal.v1.CancelBatchRequest
	(*CancelBatchResponse)(nil),  // 8: fiscal.v1.CancelBatchResponse
	(*ExportReportRequest)(nil),  // 9: fiscal.v1.ExportReportRequest
	(*ExportReportResponse)(nil), // 10: fiscal.v1.ExportReportResponse
	(*Batch)(nil),                // 11: fiscal.v1.Batch
	(*Record)(nil),               // 12: fiscal.v1.Record
	(*BatchProgress)(nil),        // 13: fiscal.v1.BatchProgress
}
var file_fiscal_v1_fiscal_proto_depIdxs = []int32{
	11, // 0: fiscal.v1.GetBatchResponse.batch:type_name -> fiscal.v1.Batch
	12, // 1: fiscal.v1.GetBatchResponse.records:type_name -> fiscal.v1.Record
	11, // 2: fiscal.v1.ListBatchesResponse.batches:type_name -> fiscal.v1.Batch
	0,  // 3: fiscal.v1.BatchService.SubmitBatch:input_type -> fiscal.v1.SubmitBatchRequest
	2,  // 4: fiscal.v1.BatchService.GetBatch:input_type -> fiscal.v1.GetBatchRequest
	4,  // 5: fiscal.v1.BatchService.ListBatches:input_type -> fiscal.v1.ListBatchesRequest
	6,  // 6: fiscal.v1.BatchService.WatchBatch:input_type -> fiscal.v1.WatchBatchRequest
	7,  // 7: fiscal.v1.BatchService.CancelBatch:input_type -> fiscal.v1.CancelBatchRequest
	9,  // 8: fiscal.v1.BatchService.ExportReport:input_type -> fiscal.v1.ExportReportRequest
	1,  // 9: fiscal.v1.BatchService.SubmitBatch:output_type -> fiscal.v1.SubmitBatchResponse
	3,  // 10: fiscal.v1.BatchService.GetBatch:output_type -> fiscal.v1.GetBatchResponse
	5,  // 11: fiscal.v1.BatchService.ListBatches:output_type -> fiscal.v1.ListBatchesResponse
	13, // 12: fiscal.v1.BatchService.WatchBatch:output_type -> fiscal.v1.BatchProgress
	8,  // 13: fiscal.v1.BatchService.CancelBatch:output_type -> fiscal.v1.CancelBatchResponse
	10, // 14: fiscal.v1.BatchService.ExportReport:output_type -> fiscal.v1.ExportReportResponse
	9,  // [9:15] is the sub-list for method output_type
	3,  // [3:9] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_fiscal_v1_fiscal_proto_init() }
func file_fiscal_v1_fiscal_proto_init() {
	if File_fiscal_v1_fiscal_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_fiscal_v1_fiscal_proto_rawDesc), len(file_fiscal_v1_fiscal_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_fiscal_v1_fiscal_proto_goTypes,
		DependencyIndexes: file_fiscal_v1_fiscal_proto_depIdxs,
		MessageInfos:      file_fiscal_v1_fiscal_proto_msgTypes,
	}.Build()
	File_fiscal_v1_fiscal_proto = out.File
	file_fiscal_v1_fiscal_proto_goTypes = nil
	file_fiscal_v1_fiscal_proto_depIdxs = nil
}
