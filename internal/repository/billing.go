package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository/dao"
)

var (
	ErrBillNotFound        = dao.ErrBillNotFound
	ErrSalesReturnNotFound = dao.ErrSalesReturnNotFound
)

type BillingDAO interface {
	Insert(ctx context.Context, bill dao.Bill) (dao.Bill, error)
	FindByID(ctx context.Context, id uint) (dao.Bill, error)
	FindAll(ctx context.Context) ([]dao.Bill, error)
	FindByStallID(ctx context.Context, stallID uint) ([]dao.Bill, error)
	Update(ctx context.Context, bill dao.Bill) (dao.Bill, error)
	Delete(ctx context.Context, id uint) error
	DeleteByStallID(ctx context.Context, stallID uint) error
	InsertSalesReturn(ctx context.Context, ret dao.SalesReturn) (dao.SalesReturn, error)
	FindSalesReturns(ctx context.Context) ([]dao.SalesReturn, error)
	FindSalesReturnsByBillID(ctx context.Context, billID uint) ([]dao.SalesReturn, error)
	DeleteSalesReturnsByBillID(ctx context.Context, billID uint) error
	DeleteSalesReturnsByStallID(ctx context.Context, stallID uint) error
}

type BillingRepository struct {
	dao BillingDAO
}

func NewBillingRepository(dao BillingDAO) *BillingRepository {
	return &BillingRepository{
		dao: dao,
	}
}

func (r *BillingRepository) billDomainToDao(b domain.Bill) (dao.Bill, error) {
	items, err := json.Marshal(b.Items)
	if err != nil {
		return dao.Bill{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	return dao.Bill{
		ID:             b.ID,
		StallID:        b.StallID,
		Items:          string(items),
		Subtotal:       b.Subtotal,
		Total:          b.Total,
		Status:         string(b.Status),
		DeliveryStatus: string(b.DeliveryStatus),
		CustomerName:   b.CustomerName,
		CustomerMobile: b.CustomerMobile,
		ReceiptNumber:  b.ReceiptNumber,
		SerialNumber:   b.SerialNumber,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}, nil
}

func (r *BillingRepository) billDaoToDomain(b dao.Bill) (domain.Bill, error) {
	var items []domain.BillItem
	if err := json.Unmarshal([]byte(b.Items), &items); err != nil {
		return domain.Bill{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return domain.Bill{
		ID:             b.ID,
		StallID:        b.StallID,
		Items:          items,
		Subtotal:       b.Subtotal,
		Total:          b.Total,
		Status:         domain.BillStatus(b.Status),
		DeliveryStatus: domain.DeliveryStatus(b.DeliveryStatus),
		CustomerName:   b.CustomerName,
		CustomerMobile: b.CustomerMobile,
		ReceiptNumber:  b.ReceiptNumber,
		SerialNumber:   b.SerialNumber,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}, nil
}

func (r *BillingRepository) billsDaoToDomain(found []dao.Bill) ([]domain.Bill, error) {
	bills := make([]domain.Bill, len(found))
	for i, b := range found {
		bill, err := r.billDaoToDomain(b)
		if err != nil {
			return nil, err
		}
		bills[i] = bill
	}

	return bills, nil
}

func (r *BillingRepository) returnDomainToDao(ret domain.SalesReturn) (dao.SalesReturn, error) {
	items, err := json.Marshal(ret.Items)
	if err != nil {
		return dao.SalesReturn{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	return dao.SalesReturn{
		ID:           ret.ID,
		BillID:       ret.BillID,
		StallID:      ret.StallID,
		Items:        string(items),
		ReturnAmount: ret.ReturnAmount,
		Reason:       ret.Reason,
		ReturnNumber: ret.ReturnNumber,
		CreatedAt:    ret.CreatedAt,
	}, nil
}

func (r *BillingRepository) returnDaoToDomain(ret dao.SalesReturn) (domain.SalesReturn, error) {
	var items []domain.SalesReturnItem
	if err := json.Unmarshal([]byte(ret.Items), &items); err != nil {
		return domain.SalesReturn{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return domain.SalesReturn{
		ID:           ret.ID,
		BillID:       ret.BillID,
		StallID:      ret.StallID,
		Items:        items,
		ReturnAmount: ret.ReturnAmount,
		Reason:       ret.Reason,
		ReturnNumber: ret.ReturnNumber,
		CreatedAt:    ret.CreatedAt,
	}, nil
}

func (r *BillingRepository) returnsDaoToDomain(found []dao.SalesReturn) ([]domain.SalesReturn, error) {
	returns := make([]domain.SalesReturn, len(found))
	for i, ret := range found {
		converted, err := r.returnDaoToDomain(ret)
		if err != nil {
			return nil, err
		}
		returns[i] = converted
	}

	return returns, nil
}

func (r *BillingRepository) Create(ctx context.Context, bill domain.Bill) (domain.Bill, error) {
	billDAO, err := r.billDomainToDao(bill)
	if err != nil {
		return domain.Bill{}, err
	}

	created, err := r.dao.Insert(ctx, billDAO)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.billDaoToDomain(created)
}

func (r *BillingRepository) FindByID(ctx context.Context, id uint) (domain.Bill, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.billDaoToDomain(found)
}

func (r *BillingRepository) FindAll(ctx context.Context) ([]domain.Bill, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.billsDaoToDomain(found)
}

func (r *BillingRepository) FindByStallID(ctx context.Context, stallID uint) ([]domain.Bill, error) {
	found, err := r.dao.FindByStallID(ctx, stallID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStallID -> %w", err)
	}

	return r.billsDaoToDomain(found)
}

func (r *BillingRepository) Update(ctx context.Context, bill domain.Bill) (domain.Bill, error) {
	billDAO, err := r.billDomainToDao(bill)
	if err != nil {
		return domain.Bill{}, err
	}

	updated, err := r.dao.Update(ctx, billDAO)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.billDaoToDomain(updated)
}

func (r *BillingRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *BillingRepository) DeleteByStallID(ctx context.Context, stallID uint) error {
	if err := r.dao.DeleteByStallID(ctx, stallID); err != nil {
		return fmt.Errorf("r.dao.DeleteByStallID -> %w", err)
	}

	return nil
}

func (r *BillingRepository) CreateSalesReturn(ctx context.Context, ret domain.SalesReturn) (domain.SalesReturn, error) {
	retDAO, err := r.returnDomainToDao(ret)
	if err != nil {
		return domain.SalesReturn{}, err
	}

	created, err := r.dao.InsertSalesReturn(ctx, retDAO)
	if err != nil {
		return domain.SalesReturn{}, fmt.Errorf("r.dao.InsertSalesReturn -> %w", err)
	}

	return r.returnDaoToDomain(created)
}

func (r *BillingRepository) FindSalesReturns(ctx context.Context) ([]domain.SalesReturn, error) {
	found, err := r.dao.FindSalesReturns(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindSalesReturns -> %w", err)
	}

	return r.returnsDaoToDomain(found)
}

func (r *BillingRepository) FindSalesReturnsByBillID(ctx context.Context, billID uint) ([]domain.SalesReturn, error) {
	found, err := r.dao.FindSalesReturnsByBillID(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindSalesReturnsByBillID -> %w", err)
	}

	return r.returnsDaoToDomain(found)
}

func (r *BillingRepository) DeleteSalesReturnsByBillID(ctx context.Context, billID uint) error {
	if err := r.dao.DeleteSalesReturnsByBillID(ctx, billID); err != nil {
		return fmt.Errorf("r.dao.DeleteSalesReturnsByBillID -> %w", err)
	}

	return nil
}

func (r *BillingRepository) DeleteSalesReturnsByStallID(ctx context.Context, stallID uint) error {
	if err := r.dao.DeleteSalesReturnsByStallID(ctx, stallID); err != nil {
		return fmt.Errorf("r.dao.DeleteSalesReturnsByStallID -> %w", err)
	}

	return nil
}
