// Package lib 存放与事件桥接语义无关的基础工具
//
// 目前只有 log：组件日志器与全局日志初始化。
// 公共契约在 pkg/interfaces，基础类型在 pkg/types。
package lib
