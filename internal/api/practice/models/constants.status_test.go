package models

import "testing"

func TestCanTransitionReturn_ChuoiTuanTu(t *testing.T) {
	steps := [][2]string{
		{ReturnStatusPending, ReturnStatusInProgress},
		{ReturnStatusInProgress, ReturnStatusFilled},
		{ReturnStatusFilled, ReturnStatusCompleted},
	}
	for _, s := range steps {
		if !CanTransitionReturn(s[0], s[1]) {
			t.Errorf("bước chuyển %s -> %s phải hợp lệ", s[0], s[1])
		}
	}
	if CanTransitionReturn(ReturnStatusPending, ReturnStatusFilled) {
		t.Error("không được nhảy cóc pending -> filled")
	}
	if CanTransitionReturn(ReturnStatusCompleted, ReturnStatusPending) {
		t.Error("completed là trạng thái kết thúc, không quay lại được")
	}
	if CanTransitionReturn(ReturnStatusFilled, ReturnStatusInProgress) {
		t.Error("tờ khai không chuyển ngược được")
	}
}

func TestCanTransitionInvoice(t *testing.T) {
	valid := [][2]string{
		{InvoiceStatusDraft, InvoiceStatusSent},
		{InvoiceStatusSent, InvoiceStatusPending},
		{InvoiceStatusPending, InvoiceStatusPartial},
		{InvoiceStatusPartial, InvoiceStatusPending},
		{InvoiceStatusPartial, InvoiceStatusPaid},
		{InvoiceStatusPending, InvoiceStatusOverdue},
		{InvoiceStatusOverdue, InvoiceStatusPaid},
	}
	for _, s := range valid {
		if !CanTransitionInvoice(s[0], s[1]) {
			t.Errorf("bước chuyển %s -> %s phải hợp lệ", s[0], s[1])
		}
	}
	invalid := [][2]string{
		{InvoiceStatusDraft, InvoiceStatusPaid},
		{InvoiceStatusPaid, InvoiceStatusPending},
		{InvoiceStatusDraft, InvoiceStatusOverdue},
	}
	for _, s := range invalid {
		if CanTransitionInvoice(s[0], s[1]) {
			t.Errorf("bước chuyển %s -> %s phải bị chặn", s[0], s[1])
		}
	}
}

func TestCanTransitionRequest(t *testing.T) {
	if !CanTransitionRequest(RequestStatusPending, RequestStatusInProgress) {
		t.Error("Pending -> In Progress phải hợp lệ")
	}
	if !CanTransitionRequest(RequestStatusPending, RequestStatusRejected) {
		t.Error("Rejected đến được từ Pending")
	}
	if !CanTransitionRequest(RequestStatusInProgress, RequestStatusRejected) {
		t.Error("Rejected đến được từ In Progress")
	}
	if CanTransitionRequest(RequestStatusResolved, RequestStatusPending) {
		t.Error("Resolved là trạng thái kết thúc")
	}
	if CanTransitionRequest(RequestStatusRejected, RequestStatusInProgress) {
		t.Error("Rejected là trạng thái kết thúc")
	}
	if CanTransitionRequest("không tồn tại", RequestStatusPending) {
		t.Error("trạng thái lạ không chuyển đi đâu được")
	}
}

func TestCanDeleteRequest_ChiKhiPending(t *testing.T) {
	if !CanDeleteRequest(RequestStatusPending) {
		t.Error("yêu cầu Pending phải xóa được")
	}
	for _, status := range []string{RequestStatusInProgress, RequestStatusResolved, RequestStatusRejected} {
		if CanDeleteRequest(status) {
			t.Errorf("yêu cầu %s không được xóa", status)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if !IsTerminalInvoice(InvoiceStatusPaid) || IsTerminalInvoice(InvoiceStatusOverdue) {
		t.Error("chỉ Paid là trạng thái kết thúc của hóa đơn")
	}
	if !IsTerminalRequest(RequestStatusResolved) || !IsTerminalRequest(RequestStatusRejected) {
		t.Error("Resolved và Rejected đều là trạng thái kết thúc của yêu cầu")
	}
	if IsTerminalRequest(RequestStatusInProgress) {
		t.Error("In Progress chưa kết thúc")
	}
	if !IsTerminalReturn(ReturnStatusCompleted) || IsTerminalReturn(ReturnStatusFilled) {
		t.Error("chỉ completed là trạng thái kết thúc của tờ khai")
	}
}
