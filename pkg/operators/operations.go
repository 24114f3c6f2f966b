package operators

import (
	"context"

	"github.com/transferworks/storage-transfer-backend/pkg/clients/transfer_client"
	ce "github.com/transferworks/storage-transfer-backend/pkg/errors"
	"github.com/transferworks/storage-transfer-backend/pkg/transfer"
)

type GetOperationOperator struct {
	OperationName string

	client transfer_client.TransferClient
}

func NewGetOperationOperator(operationName string, client transfer_client.TransferClient) (*GetOperationOperator, error) {
	if operationName == "" {
		return nil, ce.NewRequiredParamError("operation_name")
	}
	return &GetOperationOperator{OperationName: operationName, client: client}, nil
}

func (o *GetOperationOperator) Execute(ctx context.Context) (*transfer.Operation, error) {
	return o.client.GetTransferOperation(ctx, o.OperationName)
}

type ListOperationsOperator struct {
	Filter *transfer.OperationFilter

	client transfer_client.TransferClient
}

func NewListOperationsOperator(filter *transfer.OperationFilter, client transfer_client.TransferClient) (*ListOperationsOperator, error) {
	if filter == nil {
		return nil, ce.NewRequiredParamError("filter")
	}
	return &ListOperationsOperator{Filter: filter, client: client}, nil
}

func (o *ListOperationsOperator) Execute(ctx context.Context) ([]transfer.Operation, error) {
	return o.client.ListTransferOperations(ctx, o.Filter)
}

type PauseOperationOperator struct {
	OperationName string

	client transfer_client.TransferClient
}

func NewPauseOperationOperator(operationName string, client transfer_client.TransferClient) (*PauseOperationOperator, error) {
	if operationName == "" {
		return nil, ce.NewRequiredParamError("operation_name")
	}
	return &PauseOperationOperator{OperationName: operationName, client: client}, nil
}

func (o *PauseOperationOperator) Execute(ctx context.Context) error {
	return o.client.PauseTransferOperation(ctx, o.OperationName)
}

type ResumeOperationOperator struct {
	OperationName string

	client transfer_client.TransferClient
}

func NewResumeOperationOperator(operationName string, client transfer_client.TransferClient) (*ResumeOperationOperator, error) {
	if operationName == "" {
		return nil, ce.NewRequiredParamError("operation_name")
	}
	return &ResumeOperationOperator{OperationName: operationName, client: client}, nil
}

func (o *ResumeOperationOperator) Execute(ctx context.Context) error {
	return o.client.ResumeTransferOperation(ctx, o.OperationName)
}

type CancelOperationOperator struct {
	OperationName string

	client transfer_client.TransferClient
}

func NewCancelOperationOperator(operationName string, client transfer_client.TransferClient) (*CancelOperationOperator, error) {
	if operationName == "" {
		return nil, ce.NewRequiredParamError("operation_name")
	}
	return &CancelOperationOperator{OperationName: operationName, client: client}, nil
}

func (o *CancelOperationOperator) Execute(ctx context.Context) error {
	return o.client.CancelTransferOperation(ctx, o.OperationName)
}
